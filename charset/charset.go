// Package charset maps glyph indices of an MSX font to Unicode runes.
//
// The MSX international character set is not part of any registry; its
// printable ASCII half is plain ASCII and most of its upper half matches IBM
// code page 437, so Default uses that table.
package charset

import (
	"fmt"
	"slices"

	"golang.org/x/text/encoding/charmap"

	"github.com/zhimiaox/msxfont"
)

// Charset is a one-to-one mapping between the 256 glyph indices and runes.
type Charset struct {
	cm *charmap.Charmap
}

// Default maps glyphs through code page 437.
var Default = New(charmap.CodePage437)

// New wraps any single-byte charmap.
func New(cm *charmap.Charmap) *Charset {
	return &Charset{cm: cm}
}

func (c *Charset) String() string {
	return c.cm.String()
}

// Rune returns the rune drawn by glyph.
func (c *Charset) Rune(glyph int) (rune, error) {
	if glyph < 0 || glyph >= msxfont.NumGlyphs {
		return 0, &msxfont.IndexError{What: "glyph", Value: glyph, Limit: msxfont.NumGlyphs}
	}
	return c.cm.DecodeByte(byte(glyph)), nil
}

// Glyph returns the glyph index for r, if the charset has one.
func (c *Charset) Glyph(r rune) (int, bool) {
	b, ok := c.cm.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return int(b), true
}

// Runes returns the sorted, de-duplicated runes of s that the charset can
// map. Unmappable runes are dropped.
func (c *Charset) Runes(s string) []rune {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := c.Glyph(r); ok {
			runes = append(runes, r)
		}
	}
	slices.Sort(runes)
	return slices.Compact(runes)
}

// Glyphs maps every rune of s to its glyph index, failing on the first
// rune the charset cannot represent.
func (c *Charset) Glyphs(s string) ([]int, error) {
	glyphs := make([]int, 0, len(s))
	for _, r := range s {
		g, ok := c.Glyph(r)
		if !ok {
			return nil, fmt.Errorf("charset %s: no glyph for %q", c, r)
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}
