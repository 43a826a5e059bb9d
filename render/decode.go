package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// formats accepted by DecodeSheet
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/zhimiaox/msxfont"
)

// DecodeSheet reads a font back from a sheet image such as the ones Sheet
// produces. The image must be square with an edge that is a multiple of
// SheetSize; each font pixel is sampled at the centre of its block and is
// set when its luminance is at least half.
func DecodeSheet(r io.Reader) (*msxfont.Font, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("render: decode sheet: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != bounds.Dy() || bounds.Dx() == 0 || bounds.Dx()%SheetSize != 0 {
		return nil, &msxfont.FormatError{
			Msg: fmt.Sprintf("sheet is %dx%d, want a square multiple of %d", bounds.Dx(), bounds.Dy(), SheetSize),
		}
	}
	scale := bounds.Dx() / SheetSize

	f := msxfont.New()
	for g := range msxfont.NumGlyphs {
		at := GlyphOrigin(g, scale).Add(bounds.Min)
		for y := range msxfont.GlyphHeight {
			for x := range msxfont.GlyphWidth {
				c := img.At(at.X+x*scale+scale/2, at.Y+y*scale+scale/2)
				gc := color.GrayModel.Convert(c).(color.Gray)
				if gc.Y < 0x80 {
					continue
				}
				if err := f.SetPixel(g, x, y, true); err != nil {
					return nil, err
				}
			}
		}
	}
	return f, nil
}
