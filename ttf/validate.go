package ttf

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

var (
	errRequiredField = errors.New("required field missing")
	errRangeCheck    = errors.New("range check error")
)

// requiredRunes must all have glyphs; a font without them cannot produce a
// usable character set.
var requiredRunes = []rune{'A'}

// validate checks that a parsed font can be rasterized into glyph cells.
func validate(f *truetype.Font) error {
	if f.FUnitsPerEm() <= 0 {
		return fmt.Errorf("units per em %d: %w", f.FUnitsPerEm(), errRangeCheck)
	}
	for _, r := range requiredRunes {
		if f.Index(r) == 0 {
			return fmt.Errorf("no glyph for %q: %w", r, errRequiredField)
		}
	}
	b := f.Bounds(fixed.I(int(f.FUnitsPerEm())))
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
		return fmt.Errorf("empty font bounds %v: %w", b, errRangeCheck)
	}
	return nil
}
