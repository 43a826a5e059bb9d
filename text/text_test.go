package text

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/zhimiaox/msxfont"
)

func assertGlyphRows(t *testing.T, f *msxfont.Font, g int, values ...byte) {
	t.Helper()
	rows, err := f.GlyphBytes(g)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if rows[i] != v {
			t.Errorf("glyph %02X row %d: expected %08b got %08b", g, i, v, rows[i])
		}
	}
}

func TestDecode(t *testing.T) {
	var document = `# a partial font
41  [  XX    ]
41  [ X  X   ]
41  [X    X  ]
41  [X    X  ]
41  [XXXXXX  ]
41  [X    X  ]
41  [X    X  ]
41  [        ]

ff  [XXXXXXXX]
FF  [X      X]
FF  [X      X]
FF  [X      X]
FF  [X      X]
FF  [X      X]
FF  [X      X]
FF  [XXXXXXXX]
`
	font, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}

	assertGlyphRows(t, font, 0x41, 0b00110000, 0b01001000, 0b10000100, 0b10000100, 0b11111100, 0b10000100, 0b10000100, 0)
	assertGlyphRows(t, font, 0xFF, 0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF)
	if blank, _ := font.IsBlank(0x42); !blank {
		t.Error("glyph missing from the document should be blank")
	}
}

func TestRoundTrip(t *testing.T) {
	data := make([]byte, msxfont.FontSize)
	rand.New(rand.NewSource(9)).Read(data)
	f, err := msxfont.NewFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != msxfont.FontSize {
		t.Errorf("expected %d lines, got %d", msxfont.FontSize, n)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(f) {
		t.Error("text round trip changed the font")
	}
}

func TestEncodeGlyphs(t *testing.T) {
	f := msxfont.New()
	f.SetPixel(1, 0, 0, true)
	f.SetPixel(1, 7, 7, true)

	var buf bytes.Buffer
	if err := EncodeGlyphs(&buf, f, 1); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 || lines[0] != "01  [X       ]" || lines[7] != "01  [       X]" {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	if err := EncodeGlyphs(&buf, f, 300); !errors.Is(err, msxfont.ErrIndex) {
		t.Errorf("expected index error, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no brackets", "41  XXXX\n"},
		{"bad index", "G1  [        ]\n"},
		{"index too large", "100  [        ]\n"},
		{"short row", "41  [XX]\n"},
		{"bad pixel", "41  [X.X.X.X.]\n"},
		{"too few rows", "41  [        ]\n41  [        ]\n"},
		{"too many rows", strings.Repeat("41  [        ]\n", 9)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			if !errors.Is(err, msxfont.ErrFormat) {
				t.Errorf("expected format error, got %v", err)
			}
		})
	}
}
