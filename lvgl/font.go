// Package lvgl exports MSX fonts in the LVGL binary font format, loadable
// at runtime with lv_binfont_create.
package lvgl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/charset"
)

type Font struct {
	*HeadTable
	*CmapTable
	*LocaTable
	*GlyfTable
}

// NewFont encodes the glyphs of f for runes into an LVGL font. Runes are
// mapped to glyphs through cs; runes cs cannot map are left out. It returns
// nil when no rune is left.
func NewFont(f *msxfont.Font, cs *charset.Charset, runes []rune) ([]byte, error) {
	runes = slices.Clone(runes)
	slices.Sort(runes)
	runes = slices.Compact(runes)

	glyphs := make([]int, 0, len(runes))
	mapped := runes[:0]
	var missing []rune
	for _, r := range runes {
		g, ok := cs.Glyph(r)
		if !ok {
			missing = append(missing, r)
			continue
		}
		mapped = append(mapped, r)
		glyphs = append(glyphs, g)
	}
	if len(missing) > 0 {
		slog.Warn("lvgl: runes without a glyph", "charset", cs.String(), "runes", string(missing))
	}
	if len(mapped) == 0 {
		return nil, nil
	}

	fnt := new(Font)
	fnt.HeadTable = NewHeadTable()
	cmapTable, cmapSubHeaders, cmapSubData := NewCmapTable(mapped)
	fnt.CmapTable = cmapTable
	fnt.GlyfTable = NewGlyfTable()

	// glyph ID 0 is the empty "no glyph" entry
	bitmaps := make([][]byte, len(glyphs))
	bitmapSize := int(fnt.GlyfTable.Size)
	locaOffset := []uint32{uint32(bitmapSize), uint32(bitmapSize)}
	for i, g := range glyphs {
		rows, err := f.GlyphBytes(g)
		if err != nil {
			return nil, err
		}
		bitmaps[i] = NewGlyfData(rows).Bytes()
		bitmapSize += len(bitmaps[i])
		locaOffset = append(locaOffset, uint32(bitmapSize))
	}
	// the last offset closes the final glyph; it is not an entry of its own
	locaOffset = locaOffset[:len(locaOffset)-1]
	fnt.LocaTable = NewLocaTable(len(locaOffset))
	fnt.GlyfTable.Size = uint32(bitmapSize)

	binBuf := &bytes.Buffer{}
	for _, part := range []struct {
		name string
		data any
	}{
		{"head", fnt.HeadTable},
		{"cmap", fnt.CmapTable},
		{"cmap subtable headers", cmapSubHeaders},
		{"cmap subtable data", []uint16(cmapSubData)},
		{"loca", fnt.LocaTable},
		{"loca offsets", locaOffset},
		{"glyf", fnt.GlyfTable},
	} {
		if err := binary.Write(binBuf, binary.LittleEndian, part.data); err != nil {
			return nil, fmt.Errorf("lvgl: encode %s: %w", part.name, err)
		}
	}
	for _, b := range bitmaps {
		binBuf.Write(b)
	}
	slog.Debug("lvgl: font encoded", "glyphs", len(glyphs), "bytes", binBuf.Len())
	return binBuf.Bytes(), nil
}
