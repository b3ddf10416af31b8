package hunk

import "fmt"

// Block type identifiers.
const (
	IDUnit         = 0x3E7
	IDName         = 0x3E8
	IDCode         = 0x3E9
	IDData         = 0x3EA
	IDBSS          = 0x3EB
	IDReloc32      = 0x3EC
	IDRelReloc16   = 0x3ED
	IDRelReloc8    = 0x3EE
	IDExt          = 0x3EF
	IDSymbol       = 0x3F0
	IDDebug        = 0x3F1
	IDEnd          = 0x3F2
	IDHeader       = 0x3F3
	IDOverlay      = 0x3F5
	IDBreak        = 0x3F6
	IDDRel32       = 0x3F7
	IDDRel16       = 0x3F8
	IDDRel8        = 0x3F9
	IDLib          = 0x3FA
	IDIndex        = 0x3FB
	IDReloc32Short = 0x3FC
	IDRelReloc32   = 0x3FD
	IDAbsReloc16   = 0x3FE
)

// maxStringLongs limits name lengths read from the file.
const maxStringLongs = 0x10000

// maxHunks limits the hunk count of the header.
const maxHunks = 65536

// Type is the content type of a hunk.
type Type uint32

// Content hunk types.
const (
	Code Type = IDCode
	Data Type = IDData
	BSS  Type = IDBSS
)

var blockNames = map[uint32]string{
	IDUnit:         "HUNK_UNIT",
	IDName:         "HUNK_NAME",
	IDCode:         "HUNK_CODE",
	IDData:         "HUNK_DATA",
	IDBSS:          "HUNK_BSS",
	IDReloc32:      "HUNK_RELOC32",
	IDRelReloc16:   "HUNK_RELRELOC16",
	IDRelReloc8:    "HUNK_RELRELOC8",
	IDExt:          "HUNK_EXT",
	IDSymbol:       "HUNK_SYMBOL",
	IDDebug:        "HUNK_DEBUG",
	IDEnd:          "HUNK_END",
	IDHeader:       "HUNK_HEADER",
	IDOverlay:      "HUNK_OVERLAY",
	IDBreak:        "HUNK_BREAK",
	IDDRel32:       "HUNK_DREL32",
	IDDRel16:       "HUNK_DREL16",
	IDDRel8:        "HUNK_DREL8",
	IDLib:          "HUNK_LIB",
	IDIndex:        "HUNK_INDEX",
	IDReloc32Short: "HUNK_RELOC32SHORT",
	IDRelReloc32:   "HUNK_RELRELOC32",
	IDAbsReloc16:   "HUNK_ABSRELOC16",
}

// BlockName returns the name of a block type identifier like "HUNK_CODE".
func BlockName(id uint32) string {
	name, ok := blockNames[id&0x3FFFFFFF]
	if !ok {
		return fmt.Sprintf("HUNK_0x%X", id)
	}
	return name
}

// String returns the block name of the type.
func (t Type) String() string {
	return BlockName(uint32(t))
}

// Section returns the section keyword used in listings.
func (t Type) Section() string {
	switch t {
	case Code:
		return "CODE"
	case Data:
		return "DATA"
	case BSS:
		return "BSS"
	default:
		return "UNKNOWN"
	}
}

// MemoryKind is the allocation preference of a hunk.
type MemoryKind uint8

// Memory kinds, decoded from the upper 2 bits of a size or type word.
const (
	MemoryAny MemoryKind = iota
	MemoryFast
	MemoryChip
	MemoryExtended
)

// MemoryType is the memory requirement of a hunk. Flags holds the raw
// word for the extended kind.
type MemoryType struct {
	Kind  MemoryKind
	Flags uint32
}

// MemoryFromFlags decodes the memory type from bits 31-30 of a word.
func MemoryFromFlags(word uint32) MemoryType {
	kind := MemoryKind(word >> 30)
	if kind == MemoryExtended {
		return MemoryType{Kind: kind, Flags: word}
	}
	return MemoryType{Kind: kind}
}

func (m MemoryType) String() string {
	switch m.Kind {
	case MemoryAny:
		return "ANY"
	case MemoryChip:
		return "CHIP"
	case MemoryFast:
		return "FAST"
	default:
		return fmt.Sprintf("EXT(0x%08X)", m.Flags)
	}
}

// Relocation lists the offsets inside a hunk that get patched with the
// load address of the target hunk.
type Relocation struct {
	Target  uint32
	Offsets []uint32
}

// Symbol is an entry of a symbol block, Value is the offset inside the hunk.
type Symbol struct {
	Name  string
	Value uint32
}

// Hunk is a loadable code, data or bss segment with its attached metadata.
type Hunk struct {
	Index       int
	Type        Type
	Memory      MemoryType
	AllocSize   uint32 // allocation size, can exceed len(Data)
	Data        []byte // empty for bss hunks
	Relocations []Relocation
	Symbols     []Symbol
	Name        string
	Debug       []byte // raw debug block, nil if not present
}

// RelocationSites returns the relocated offsets of the hunk mapped to
// their target hunk.
func (h *Hunk) RelocationSites() map[uint32]uint32 {
	sites := make(map[uint32]uint32)
	for _, reloc := range h.Relocations {
		for _, offset := range reloc.Offsets {
			sites[offset] = reloc.Target
		}
	}
	return sites
}

// RelocationCount returns the number of relocated offsets.
func (h *Hunk) RelocationCount() int {
	var n int
	for _, reloc := range h.Relocations {
		n += len(reloc.Offsets)
	}
	return n
}

// File is a parsed hunk executable.
type File struct {
	Hunks []*Hunk
	First uint32 // first hunk index of the header
	Last  uint32 // last hunk index of the header
}
