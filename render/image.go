// Package render projects MSX fonts into images. Nothing here is cached
// inside the font; images are regenerated from the font data on demand.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/zhimiaox/msxfont"
)

// SheetColumns is the number of glyphs per row of a sheet; a sheet is
// SheetColumns × SheetColumns glyphs.
const SheetColumns = 16

// SheetSize is the edge length of an unscaled sheet in pixels.
const SheetSize = SheetColumns * msxfont.GlyphWidth

var (
	Ink        = color.White
	Background = color.Black

	// Palette index 0 is the background, 1 the ink.
	Palette = color.Palette{Background, Ink}
)

func unscaledGlyph(rows [msxfont.GlyphHeight]byte) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, msxfont.GlyphWidth, msxfont.GlyphHeight), Palette)
	for y, row := range rows {
		for x := range msxfont.GlyphWidth {
			if row&(1<<(7-x)) != 0 {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// GlyphImage draws one glyph, each font pixel becoming a scale×scale block.
func GlyphImage(f *msxfont.Font, glyph, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render: invalid scale %d", scale)
	}
	rows, err := f.GlyphBytes(glyph)
	if err != nil {
		return nil, err
	}
	src := unscaledGlyph(rows)
	if scale == 1 {
		return src, nil
	}
	dst := image.NewPaletted(image.Rect(0, 0, msxfont.GlyphWidth*scale, msxfont.GlyphHeight*scale), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Sheet draws the whole font as a 16×16 grid, glyph 0 at the top left and
// glyph 255 at the bottom right.
func Sheet(f *msxfont.Font, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render: invalid scale %d", scale)
	}
	src := image.NewPaletted(image.Rect(0, 0, SheetSize, SheetSize), Palette)
	for g := range msxfont.NumGlyphs {
		rows, err := f.GlyphBytes(g)
		if err != nil {
			return nil, err
		}
		at := GlyphOrigin(g, 1)
		draw.Draw(src, image.Rectangle{Min: at, Max: at.Add(image.Pt(msxfont.GlyphWidth, msxfont.GlyphHeight))},
			unscaledGlyph(rows), image.Point{}, draw.Src)
	}
	if scale == 1 {
		return src, nil
	}
	dst := image.NewPaletted(image.Rect(0, 0, SheetSize*scale, SheetSize*scale), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// GlyphOrigin returns the top-left corner of glyph within a sheet drawn at
// scale.
func GlyphOrigin(glyph, scale int) image.Point {
	return image.Pt(
		(glyph%SheetColumns)*msxfont.GlyphWidth*scale,
		(glyph/SheetColumns)*msxfont.GlyphHeight*scale,
	)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
