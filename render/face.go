package render

import (
	"image"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/charset"
)

// NewFace builds a font.Face from a snapshot of f. Runes are looked up
// through cs; later edits to f are not reflected in the face.
func NewFace(f *msxfont.Font, cs *charset.Charset) (*basicfont.Face, error) {
	mask := image.NewAlpha(image.Rect(0, 0, msxfont.GlyphWidth, msxfont.FontSize))
	ranges := make([]basicfont.Range, 0, msxfont.NumGlyphs)
	for g := range msxfont.NumGlyphs {
		rows, err := f.GlyphBytes(g)
		if err != nil {
			return nil, err
		}
		for y, row := range rows {
			for x := range msxfont.GlyphWidth {
				if row&(1<<(7-x)) != 0 {
					mask.Pix[(g*msxfont.GlyphHeight+y)*mask.Stride+x] = 0xff
				}
			}
		}
		r, err := cs.Rune(g)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, basicfont.Range{Low: r, High: r + 1, Offset: g})
	}
	slices.SortFunc(ranges, func(a, b basicfont.Range) int { return int(a.Low - b.Low) })

	return &basicfont.Face{
		Advance: msxfont.GlyphWidth,
		Width:   msxfont.GlyphWidth,
		Height:  msxfont.GlyphHeight,
		Ascent:  msxfont.GlyphHeight,
		Descent: 0,
		Mask:    mask,
		Ranges:  ranges,
	}, nil
}

// DrawString draws s onto dst with its top-left corner at pt, using ink
// for set pixels. Runes without a glyph are skipped. It returns the x
// coordinate just past the last glyph.
func DrawString(dst draw.Image, face font.Face, pt image.Point, s string) int {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(Ink),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Round()),
	}
	d.DrawString(s)
	return d.Dot.X.Round()
}
