package msxfont

import "strings"

// Glyph is a decoded 8×8 character, indexed [row][column]. Column 0 is the
// leftmost pixel.
type Glyph [GlyphHeight][GlyphWidth]bool

// Rows returns the glyph as a slice matrix, the form SetGlyph accepts.
func (g Glyph) Rows() [][]bool {
	rows := make([][]bool, GlyphHeight)
	for y := range g {
		row := g[y]
		rows[y] = row[:]
	}
	return rows
}

// String draws the glyph with 'X' for set pixels and '.' for clear ones,
// one line per row.
func (g Glyph) String() string {
	var sb strings.Builder
	sb.Grow(GlyphHeight * (GlyphWidth + 1))
	for _, row := range g {
		for _, px := range row {
			if px {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// EncodeRow packs eight pixels into a row byte, b[0] into the most
// significant bit.
func EncodeRow(b [GlyphWidth]bool) byte {
	var o byte
	for i, px := range b {
		if px {
			o |= 1 << (7 - i)
		}
	}
	return o
}

// DecodeRow is the inverse of EncodeRow.
func DecodeRow(row byte) [GlyphWidth]bool {
	var b [GlyphWidth]bool
	for i := range b {
		b[i] = row&(1<<(7-i)) != 0
	}
	return b
}
