package lvgl

import (
	"bytes"
	"encoding/binary"

	"github.com/zhimiaox/msxfont"
)

type GlyfTable struct {
	Size  uint32  //4	Record size (for quick skip)
	Label [4]byte //4	glyf (table marker)
	// followed by the glyph records, glyph ID 1 first
}

type GlyfData struct {
	GlyfDataInfo
	Bitmap []byte
}

type GlyfDataInfo struct {
	AdvanceWidth int16 //advanceWidth (FP4, AdvanceWidthBits in font header)
	BBoxX        int8  //NN	BBox X (XyBits in font header)
	BBoxY        int8  //NN	BBox Y (XyBits in font header)
	BBoxWidth    uint8 //NN	BBox Width (WhBits in font header)
	BBoxHeight   uint8 //NN	BBox Height (WhBits in font header)
}

func (d *GlyfData) Bytes() []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, d.GlyfDataInfo)
	buf.Write(d.Bitmap)
	return buf.Bytes()
}

func NewGlyfTable() *GlyfTable {
	return &GlyfTable{
		Size:  8,
		Label: [4]byte{'g', 'l', 'y', 'f'},
	}
}

// NewGlyfData wraps the row bytes of an MSX glyph. At one bit per pixel an
// 8-pixel row is exactly one byte, MSB first, which is the bit order LVGL
// reads, so the rows are used unchanged.
func NewGlyfData(rows [msxfont.GlyphHeight]byte) *GlyfData {
	return &GlyfData{
		GlyfDataInfo: GlyfDataInfo{
			AdvanceWidth: msxfont.GlyphWidth * 16, // FP4
			BBoxWidth:    msxfont.GlyphWidth,
			BBoxHeight:   msxfont.GlyphHeight,
		},
		Bitmap: rows[:],
	}
}
