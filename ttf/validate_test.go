package ttf

import (
	"slices"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

func TestValidate(t *testing.T) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := validate(f); err != nil {
		t.Errorf("gomono rejected: %v", err)
	}
	if !slices.Equal(requiredRunes, []rune{'A'}) {
		t.Errorf("only 'A' is required, got %q", requiredRunes)
	}
}
