package session

import (
	"image"

	"github.com/zhimiaox/msxfont"
)

const (
	// DefaultScale is the magnification of the editor canvases.
	DefaultScale = 3

	selectorColumns = 16
	// an editor cell is twice the size of a selector pixel
	editorCell = 16
)

// Layout translates canvas coordinates into glyph indices and glyph pixel
// coordinates. The selector canvas shows all glyphs in a 16×16 grid, the
// editor canvas shows the selected glyph's 8×8 pixels.
type Layout struct {
	Scale int
}

func (l Layout) scale() int {
	if l.Scale < 1 {
		return DefaultScale
	}
	return l.Scale
}

// SelectorSize is the size of the selector canvas in screen pixels.
func (l Layout) SelectorSize() image.Point {
	n := selectorColumns * msxfont.GlyphWidth * l.scale()
	return image.Pt(n, n)
}

// EditorSize is the size of the editor canvas in screen pixels.
func (l Layout) EditorSize() image.Point {
	return image.Pt(msxfont.GlyphWidth*editorCell*l.scale(), msxfont.GlyphHeight*editorCell*l.scale())
}

// GlyphAt returns the glyph under p on the selector canvas.
func (l Layout) GlyphAt(p image.Point) (int, bool) {
	if !p.In(image.Rectangle{Max: l.SelectorSize()}) {
		return 0, false
	}
	cell := msxfont.GlyphWidth * l.scale()
	return (p.Y/cell)*selectorColumns + p.X/cell, true
}

// GlyphRect is the selector canvas area covered by glyph.
func (l Layout) GlyphRect(glyph int) image.Rectangle {
	cell := msxfont.GlyphWidth * l.scale()
	origin := image.Pt((glyph%selectorColumns)*cell, (glyph/selectorColumns)*cell)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cell, cell))}
}

// PixelAt returns the glyph pixel under p on the editor canvas.
func (l Layout) PixelAt(p image.Point) (x, y int, ok bool) {
	if !p.In(image.Rectangle{Max: l.EditorSize()}) {
		return 0, 0, false
	}
	cell := editorCell * l.scale()
	return p.X / cell, p.Y / cell, true
}

// PixelRect is the editor canvas area covered by pixel (x, y).
func (l Layout) PixelRect(x, y int) image.Rectangle {
	cell := editorCell * l.scale()
	origin := image.Pt(x*cell, y*cell)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cell, cell))}
}
