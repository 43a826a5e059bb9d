package charset

import (
	"errors"
	"slices"
	"testing"

	"github.com/zhimiaox/msxfont"
)

func TestRuneGlyph(t *testing.T) {
	tests := []struct {
		glyph int
		r     rune
	}{
		{0x20, ' '},
		{0x41, 'A'},
		{0x7A, 'z'},
		{0x80, 'Ç'},
		{0xE1, 'ß'},
	}
	for _, tc := range tests {
		r, err := Default.Rune(tc.glyph)
		if err != nil {
			t.Fatal(err)
		}
		if r != tc.r {
			t.Errorf("Rune(%#02x) = %q, want %q", tc.glyph, r, tc.r)
		}
		g, ok := Default.Glyph(tc.r)
		if !ok || g != tc.glyph {
			t.Errorf("Glyph(%q) = %#02x, %v, want %#02x", tc.r, g, ok, tc.glyph)
		}
	}
}

func TestRuneRange(t *testing.T) {
	for _, g := range []int{-1, 256} {
		if _, err := Default.Rune(g); !errors.Is(err, msxfont.ErrIndex) {
			t.Errorf("Rune(%d): expected index error, got %v", g, err)
		}
	}
}

func TestBijective(t *testing.T) {
	seen := make(map[rune]int)
	for g := range msxfont.NumGlyphs {
		r, _ := Default.Rune(g)
		if prev, dup := seen[r]; dup {
			t.Fatalf("glyphs %d and %d both map to %q", prev, g, r)
		}
		seen[r] = g
	}
}

func TestRunes(t *testing.T) {
	got := Default.Runes("baab€c")
	want := []rune{'a', 'b', 'c'}
	if !slices.Equal(got, want) {
		t.Errorf("Runes = %q, want %q", got, want)
	}
}

func TestGlyphs(t *testing.T) {
	got, err := Default.Glyphs("AB")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{0x41, 0x42}) {
		t.Errorf("Glyphs = %v", got)
	}
	if _, err := Default.Glyphs("A€"); err == nil {
		t.Error("expected an error for an unmappable rune")
	}
}
