package lvgl

import "encoding/binary"

type CmapTable struct {
	Size   uint32  //4	Record size (for quick skip)
	Label  [4]byte //4	cmap (table marker)
	Tables uint32  //4	Number of subtables
	// followed by the subtable headers, then their data
}

type CmapSubTableHeader struct {
	DataOffset       uint32 //4	Data offset (or 0 if data segment not exists)
	RangeStart       uint32 //4	Range start (min codePoint)
	RangeLength      uint16 //2	Range length (up to 65535)
	GlyphIdOffset    uint16 //2	Glyph ID offset (for delta-coding)
	DataEntriesCount uint16 //2	Data entries count (for sparse data)
	FormatType       byte   //1	Format type (0 => format 0, 1 => format sparse, 2 => format 0 tiny, 3 => format sparse tiny)
	Blank            byte   //1	- (align to 4)
}

const formatSparseTiny = 3

// CmapSparseTinyData holds codePoint - RangeStart for every entry.
type CmapSparseTinyData []uint16

// NewCmapTable maps sorted, unique runes to glyph IDs 1..len(runes) using
// sparse tiny subtables. Glyph ID 0 is reserved for "no glyph".
func NewCmapTable(runes []rune) (*CmapTable, []CmapSubTableHeader, CmapSparseTinyData) {
	tableRunes := CmapSplitSubTable(runes)
	t := &CmapTable{
		Label:  [4]byte{'c', 'm', 'a', 'p'},
		Tables: uint32(len(tableRunes)),
	}
	subHeaders := make([]CmapSubTableHeader, len(tableRunes))
	nextID := uint16(1)
	for i, subRunes := range tableRunes {
		subHeaders[i] = CmapSubTableHeader{
			RangeStart:       uint32(subRunes[0]),
			RangeLength:      uint16(subRunes[len(subRunes)-1] - subRunes[0] + 1),
			GlyphIdOffset:    nextID,
			DataEntriesCount: uint16(len(subRunes)),
			FormatType:       formatSparseTiny,
		}
		nextID += uint16(len(subRunes))
	}

	dataOffset := binary.Size(t) + binary.Size(subHeaders)
	subData := make(CmapSparseTinyData, 0, len(runes))
	for i, subRunes := range tableRunes {
		subHeaders[i].DataOffset = uint32(dataOffset)
		for _, r := range subRunes {
			subData = append(subData, uint16(r-subRunes[0]))
		}
		// keep every subtable 4-byte aligned
		if len(subRunes)%2 != 0 {
			subData = append(subData, 0)
		}
		dataOffset = binary.Size(t) + binary.Size(subHeaders) + len(subData)*2
	}
	t.Size = uint32(dataOffset)
	return t, subHeaders, subData
}

// CmapSplitSubTable splits sorted runes into groups whose span fits a
// subtable range.
func CmapSplitSubTable(runes []rune) [][]rune {
	if len(runes) == 0 {
		return nil
	}
	startRune := runes[0]
	item := make([]rune, 0)
	resp := make([][]rune, 0)
	for _, r := range runes {
		if r-startRune >= 65535 {
			resp = append(resp, item)
			item = make([]rune, 0)
			startRune = r
		}
		item = append(item, r)
	}
	if len(item) > 0 {
		resp = append(resp, item)
	}
	return resp
}
