// Package ttf builds MSX fonts from TrueType fonts by rasterizing one glyph
// per character cell.
package ttf

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/charset"
)

type Options struct {
	// Size is the font size in pixels. Zero means 8.
	Size float64
	// Threshold is the minimum coverage (1..255) of a set pixel. Zero
	// means 0x80, since a zero threshold would set every pixel.
	Threshold uint8
	// Controls also renders glyphs 0x00-0x1F, which are left blank by
	// default.
	Controls bool
	// Charset maps glyph indices to runes. Nil means charset.Default.
	Charset *charset.Charset
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Size == 0 {
		opts.Size = msxfont.GlyphHeight
	}
	if opts.Threshold == 0 {
		opts.Threshold = 0x80
	}
	if opts.Charset == nil {
		opts.Charset = charset.Default
	}
	return opts
}

// Import rasterizes the TrueType font in data into a new MSX font.
func Import(data []byte, o *Options) (*msxfont.Font, error) {
	opts := o.withDefaults()
	if opts.Size < 1 || opts.Size > 64 {
		return nil, fmt.Errorf("ttf: font size %v out of range", opts.Size)
	}

	tf, err := truetype.Parse(data)
	if err != nil {
		return nil, &msxfont.FormatError{Msg: "ttf: " + err.Error()}
	}
	if err := validate(tf); err != nil {
		return nil, &msxfont.FormatError{Msg: "ttf: " + err.Error()}
	}

	face := truetype.NewFace(tf, &truetype.Options{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// sit the baseline above the descent so descenders stay in the cell
	baseline := fixed.I(msxfont.GlyphHeight) - face.Metrics().Descent
	if baseline < fixed.I(1) {
		baseline = fixed.I(1)
	}

	out := msxfont.New()
	cell := image.NewAlpha(image.Rect(0, 0, msxfont.GlyphWidth, msxfont.GlyphHeight))
	drawn, missing := 0, 0
	for g := range msxfont.NumGlyphs {
		r, err := opts.Charset.Rune(g)
		if err != nil {
			return nil, err
		}
		if r < 0x20 && !opts.Controls {
			continue
		}
		if tf.Index(r) == 0 {
			missing++
			continue
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			missing++
			continue
		}

		clear(cell.Pix)
		d := &font.Drawer{
			Dst:  cell,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.Point26_6{X: (fixed.I(msxfont.GlyphWidth) - advance) / 2, Y: baseline},
		}
		d.DrawString(string(r))

		for y := range msxfont.GlyphHeight {
			for x := range msxfont.GlyphWidth {
				if cell.AlphaAt(x, y).A < opts.Threshold {
					continue
				}
				if err := out.SetPixel(g, x, y, true); err != nil {
					return nil, err
				}
			}
		}
		drawn++
	}
	slog.Debug("ttf: font imported", "drawn", drawn, "missing", missing, "size", opts.Size)
	return out, nil
}
