package lvgl

type LocaTable struct {
	Size       uint32  //4	Record size (for quick skip)
	Label      [4]byte //4	"loca"
	EntryCount uint32  //4	Entries count (4 to simplify align)
	// followed by EntryCount uint32 offsets into glyf
}

func NewLocaTable(entries int) *LocaTable {
	return &LocaTable{
		Size:       12 + uint32(entries)*4,
		Label:      [4]byte{'l', 'o', 'c', 'a'},
		EntryCount: uint32(entries),
	}
}
