package ttf

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/zhimiaox/msxfont"
)

func TestImport(t *testing.T) {
	f, err := Import(gomono.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, g := range []int{'A', 'M', '0', '#'} {
		blank, err := f.IsBlank(g)
		if err != nil {
			t.Fatal(err)
		}
		if blank {
			t.Errorf("glyph %q was not rendered", rune(g))
		}
	}
	for _, g := range []int{' ', 0x01} {
		if blank, _ := f.IsBlank(g); !blank {
			t.Errorf("glyph %#02x should be blank", g)
		}
	}

	a, _ := f.Glyph('A')
	b, _ := f.Glyph('B')
	if a == b {
		t.Error("distinct characters rendered identically")
	}
}

func TestImportThreshold(t *testing.T) {
	count := func(f *msxfont.Font) int {
		n := 0
		for g := range msxfont.NumGlyphs {
			gl, _ := f.Glyph(g)
			for _, row := range gl {
				for _, px := range row {
					if px {
						n++
					}
				}
			}
		}
		return n
	}
	light, err := Import(gomono.TTF, &Options{Threshold: 0x10})
	if err != nil {
		t.Fatal(err)
	}
	heavy, err := Import(gomono.TTF, &Options{Threshold: 0xF0})
	if err != nil {
		t.Fatal(err)
	}
	if count(light) <= count(heavy) {
		t.Errorf("a lower threshold should set more pixels: %d vs %d", count(light), count(heavy))
	}
}

func TestImportErrors(t *testing.T) {
	if _, err := Import([]byte("not a font"), nil); !errors.Is(err, msxfont.ErrFormat) {
		t.Errorf("expected format error, got %v", err)
	}
	if _, err := Import(gomono.TTF, &Options{Size: 500}); err == nil {
		t.Error("expected an error for an oversized font")
	}
}
