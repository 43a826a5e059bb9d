package lvgl

import (
	"encoding/binary"

	"github.com/zhimiaox/msxfont"
)

type HeadTable struct {
	Size    uint32  //4	Record size (for quick skip)
	Label   [4]byte //4	head (table marker)
	Version uint32  //4	Version (reserved)
	Tables  uint16  //2	Number of additional tables (2 bytes to simplify align)

	// typographic metrics
	FontSize    uint16 //2	Font size (px)
	Ascent      uint16 //2	Ascent (uint16)
	Descent     int16  //2	Descent (int16, negative)
	TypoAscent  uint16 //2	typoAscent (uint16), typographic ascent
	TypoDescent int16  //2	typoDescent (int16), typographic descent
	TypoLineGap uint16 //2	typoLineGap (uint16), typographic line gap
	MinY        int16  //2	min Y (used to quick check line intersections with other objects)
	MaxY        int16  //2	max Y

	DefAdvanceWidth uint16 //2	default advanceWidth (uint16), if glyph advanceWidth bits length = 0
	KerningScale    uint16 //2	kerningScale, FP12.4 unsigned, scale for kerning data, to fit source in 1 byte

	// glyph ID / loca format
	IndexToLocFormat byte //1	indexToLocFormat in loca table (0 - Offset16, 1 - Offset32)
	GlyphIdFormat    byte //1	glyphIdFormat (0 - 1 byte, 1 - 2 bytes)

	AdvanceWidthFormat byte //1	advanceWidthFormat (0 - Uint, 1 - unsigned with 4 bits)
	// bitmap and bbox layout
	BitsPerPixel     byte //1	Bits per pixel (1, 2, 3 or 4)
	XyBits           byte //1	Glyph BBox x/y bits length (unsigned)
	WhBits           byte //1	Glyph BBox w/h bits length (unsigned)
	AdvanceWidthBits byte //1	Glyph advanceWidth bits length (unsigned, may be FP4)
	// compression
	CompressionId byte //1	Compression alg ID (0 - raw bits, 1 - RLE-like with XOR prefilter, 2 - RLE-like only without prefilter)
	SubpixelsMode byte //1	Subpixel rendering. 0 - none, 1 - horisontal resolution of bitmaps is 3x, 2 - vertical resolution of bitmaps is 3x.
	tmpReserved1  byte //1	Reserved (align to 2x)
	// underline
	UnderlinePosition  int16 //2	Underline position (int16)
	UnderlineThickness int16 //2	Underline thickness (uint16)
}

// NewHeadTable describes an MSX font: every glyph is a full 8×8 cell
// standing on the baseline, stored raw at one bit per pixel.
func NewHeadTable() *HeadTable {
	t := &HeadTable{
		Size:               48,
		Label:              [4]byte{'h', 'e', 'a', 'd'},
		Version:            1,
		Tables:             3,
		FontSize:           msxfont.GlyphHeight,
		Ascent:             msxfont.GlyphHeight,
		Descent:            0,
		TypoAscent:         msxfont.GlyphHeight,
		TypoDescent:        0,
		TypoLineGap:        0,
		MinY:               0,
		MaxY:               msxfont.GlyphHeight,
		DefAdvanceWidth:    msxfont.GlyphWidth,
		KerningScale:       1 << 4,
		IndexToLocFormat:   1,
		GlyphIdFormat:      1,
		AdvanceWidthFormat: 1,
		BitsPerPixel:       1,
		XyBits:             8,
		WhBits:             8,
		AdvanceWidthBits:   16,
		UnderlinePosition:  -1,
		UnderlineThickness: 1,
	}
	t.Size = uint32(binary.Size(t))
	return t
}
