package lvgl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/charset"
)

type table struct {
	label string
	data  []byte
}

// splitTables walks the size-prefixed tables of an encoded font.
func splitTables(t *testing.T, bin []byte) []table {
	t.Helper()
	var tables []table
	for len(bin) > 0 {
		if len(bin) < 8 {
			t.Fatalf("truncated table header: %d bytes left", len(bin))
		}
		size := binary.LittleEndian.Uint32(bin)
		if int(size) > len(bin) || size < 8 {
			t.Fatalf("table %q has size %d with %d bytes left", bin[4:8], size, len(bin))
		}
		tables = append(tables, table{label: string(bin[4:8]), data: bin[:size]})
		bin = bin[size:]
	}
	return tables
}

func TestNewFont(t *testing.T) {
	f := msxfont.New()
	for y := range msxfont.GlyphHeight {
		f.SetPixel('A', y, y, true)
	}
	f.SetPixel('z', 0, 0, true)

	bin, err := NewFont(f, charset.Default, []rune("zAzA€"))
	if err != nil {
		t.Fatal(err)
	}

	tables := splitTables(t, bin)
	if len(tables) != 4 {
		t.Fatalf("expected 4 tables, got %d", len(tables))
	}
	for i, label := range []string{"head", "cmap", "loca", "glyf"} {
		if tables[i].label != label {
			t.Errorf("table %d: expected %q, got %q", i, label, tables[i].label)
		}
	}

	head := tables[0].data
	if bpp := head[37]; bpp != 1 {
		t.Errorf("expected 1 bit per pixel, got %d", bpp)
	}

	// one entry per rune plus the empty glyph 0
	loca := tables[2].data
	if n := binary.LittleEndian.Uint32(loca[8:]); n != 3 {
		t.Errorf("expected 3 loca entries, got %d", n)
	}

	// runes are sorted, so glyph 1 is 'A' and glyph 2 is 'z'
	glyf := tables[3].data
	first := binary.LittleEndian.Uint32(loca[16:])
	second := binary.LittleEndian.Uint32(loca[20:])
	if second-first != 14 || int(second)+14 != len(glyf) {
		t.Fatalf("unexpected glyph offsets %d, %d for glyf of %d bytes", first, second, len(glyf))
	}
	recA := glyf[first:second]
	if adv := binary.BigEndian.Uint16(recA); adv != 8*16 {
		t.Errorf("unexpected advance %d", adv)
	}
	if recA[4] != 8 || recA[5] != 8 {
		t.Errorf("unexpected bbox %dx%d", recA[4], recA[5])
	}
	rows, _ := f.GlyphBytes('A')
	if !bytes.Equal(recA[6:], rows[:]) {
		t.Errorf("glyph bitmap %x, want %x", recA[6:], rows)
	}
	if glyf[second+6] != 0x80 {
		t.Errorf("unexpected first row of 'z': %08b", glyf[second+6])
	}
}

func TestNewFontEmpty(t *testing.T) {
	bin, err := NewFont(msxfont.New(), charset.Default, []rune("€"))
	if err != nil || bin != nil {
		t.Errorf("expected nil, nil; got %d bytes, %v", len(bin), err)
	}
}

func TestCmapSplitSubTable(t *testing.T) {
	groups := CmapSplitSubTable([]rune{'a', 'b', 0x10000 + 'a', 0x10000 + 'b'})
	if len(groups) != 2 || len(groups[0]) != 2 || len(groups[1]) != 2 {
		t.Errorf("unexpected groups %v", groups)
	}
	if CmapSplitSubTable(nil) != nil {
		t.Error("expected no groups for no runes")
	}
}

func TestNewCmapTable(t *testing.T) {
	table, headers, data := NewCmapTable([]rune{'A', 'C', 'z'})
	if table.Tables != 1 || len(headers) != 1 {
		t.Fatalf("expected one subtable, got %d", len(headers))
	}
	h := headers[0]
	if h.RangeStart != 'A' || h.RangeLength != 'z'-'A'+1 || h.GlyphIdOffset != 1 || h.DataEntriesCount != 3 {
		t.Errorf("unexpected header %+v", h)
	}
	// three entries padded to four for alignment
	if len(data) != 4 || data[1] != 2 || data[2] != 'z'-'A' {
		t.Errorf("unexpected data %v", data)
	}
	if int(table.Size) != 12+16+8 {
		t.Errorf("unexpected cmap size %d", table.Size)
	}
}
