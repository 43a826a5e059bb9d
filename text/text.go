// Package text reads and writes fonts as plain text, one glyph row per line:
//
//	41  [  XX    ]
//	41  [ X  X   ]
//
// The first field is the glyph index in hex, the bracketed field holds the
// eight pixels with 'X' for set and ' ' for clear. Glyphs may appear in any
// order; glyphs that do not appear are blank. Blank lines and lines
// starting with '#' are ignored.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zhimiaox/msxfont"
)

// Transforms a row byte into its 8-character representation
func rowToText(row byte) string {
	var sb strings.Builder
	for x := range msxfont.GlyphWidth {
		if row&(1<<(7-x)) != 0 {
			sb.WriteByte('X')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Transforms an 8-character string of spaces and Xs into a row byte
func textToRow(t string) (byte, bool) {
	var o byte
	for i := 0; i < len(t); i++ {
		o <<= 1
		switch t[i] {
		case 'X':
			o |= 1
		case ' ':
		default:
			return 0, false
		}
	}
	return o, true
}

// Encode writes every glyph of f.
func Encode(w io.Writer, f *msxfont.Font) error {
	glyphs := make([]int, msxfont.NumGlyphs)
	for i := range glyphs {
		glyphs[i] = i
	}
	return EncodeGlyphs(w, f, glyphs...)
}

// EncodeGlyphs writes the listed glyphs of f in the given order.
func EncodeGlyphs(w io.Writer, f *msxfont.Font, glyphs ...int) error {
	bw := bufio.NewWriter(w)
	for _, g := range glyphs {
		rows, err := f.GlyphBytes(g)
		if err != nil {
			return err
		}
		for _, row := range rows {
			fmt.Fprintf(bw, "%02X  [%s]\n", g, rowToText(row))
		}
	}
	return bw.Flush()
}

// Decode parses a font written by Encode.
func Decode(r io.Reader) (*msxfont.Font, error) {
	f := msxfont.New()
	var rows [msxfont.NumGlyphs]int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx, pixels, ok := strings.Cut(line, "[")
		if !ok || !strings.HasSuffix(pixels, "]") {
			return nil, lineError(lineNo, "expected %q", "HH  [........]")
		}
		pixels = strings.TrimSuffix(pixels, "]")

		g, err := strconv.ParseUint(strings.TrimSpace(idx), 16, 8)
		if err != nil {
			return nil, lineError(lineNo, "bad glyph index %q", strings.TrimSpace(idx))
		}
		if len(pixels) != msxfont.GlyphWidth {
			return nil, lineError(lineNo, "row has %d pixels, not %d", len(pixels), msxfont.GlyphWidth)
		}
		row, ok := textToRow(pixels)
		if !ok {
			return nil, lineError(lineNo, "row %q has characters other than 'X' and ' '", pixels)
		}

		y := rows[g]
		if y == msxfont.GlyphHeight {
			return nil, lineError(lineNo, "glyph %02X has more than %d rows", g, msxfont.GlyphHeight)
		}
		rows[g]++
		for x := range msxfont.GlyphWidth {
			if row&(1<<(7-x)) == 0 {
				continue
			}
			if err := f.SetPixel(int(g), x, y, true); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &msxfont.IOError{Op: "read", Err: err}
	}

	for g, n := range rows {
		if n != 0 && n != msxfont.GlyphHeight {
			return nil, &msxfont.FormatError{Msg: fmt.Sprintf("glyph %02X has %d rows, not %d", g, n, msxfont.GlyphHeight)}
		}
	}
	return f, nil
}

func lineError(line int, format string, args ...any) error {
	return &msxfont.FormatError{Msg: fmt.Sprintf("line %d: ", line) + fmt.Sprintf(format, args...)}
}
