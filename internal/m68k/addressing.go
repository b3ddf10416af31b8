package m68k

// Mode identifies the shape of an effective address.
type Mode uint8

// Effective address shapes. The extended forms starting at
// BaseDisplacement use the full extension word format and need a 68020.
const (
	DataDirect      Mode = iota // Dn
	AddressDirect               // An
	AddressIndirect             // (An)
	PostIncrement               // (An)+
	PreDecrement                // -(An)
	Displacement                // (d16,An)
	Indexed                     // (d8,An,Xn.s*scale)
	AbsoluteShort               // (xxx).w
	AbsoluteLong                // (xxx).l
	PCDisplacement              // (d16,PC)
	PCIndexed                   // (d8,PC,Xn.s*scale)
	Immediate                   // #imm

	BaseDisplacement     // (bd,An,Xn.s*scale)
	MemoryIndirectPre    // ([bd,An,Xn.s*scale],od)
	MemoryIndirectPost   // ([bd,An],Xn.s*scale,od)
	PCBaseDisplacement   // (bd,PC,Xn.s*scale)
	PCMemoryIndirectPre  // ([bd,PC,Xn.s*scale],od)
	PCMemoryIndirectPost // ([bd,PC],Xn.s*scale,od)
)

var modeNames = [...]string{
	DataDirect:           "data register direct",
	AddressDirect:        "address register direct",
	AddressIndirect:      "address register indirect",
	PostIncrement:        "postincrement",
	PreDecrement:         "predecrement",
	Displacement:         "displacement",
	Indexed:              "indexed",
	AbsoluteShort:        "absolute short",
	AbsoluteLong:         "absolute long",
	PCDisplacement:       "pc displacement",
	PCIndexed:            "pc indexed",
	Immediate:            "immediate",
	BaseDisplacement:     "base displacement",
	MemoryIndirectPre:    "memory indirect preindexed",
	MemoryIndirectPost:   "memory indirect postindexed",
	PCBaseDisplacement:   "pc base displacement",
	PCMemoryIndirectPre:  "pc memory indirect preindexed",
	PCMemoryIndirectPost: "pc memory indirect postindexed",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "invalid"
}

// Extended returns whether the mode is one of the full extension word forms.
func (m Mode) Extended() bool {
	return m >= BaseDisplacement
}

// MemoryIndirect returns whether the mode fetches an intermediate pointer.
func (m Mode) MemoryIndirect() bool {
	switch m {
	case MemoryIndirectPre, MemoryIndirectPost, PCMemoryIndirectPre, PCMemoryIndirectPost:
		return true
	default:
		return false
	}
}

// PCRelative returns whether the mode uses the program counter as base.
func (m Mode) PCRelative() bool {
	switch m {
	case PCDisplacement, PCIndexed, PCBaseDisplacement, PCMemoryIndirectPre, PCMemoryIndirectPost:
		return true
	default:
		return false
	}
}

// IndexRegister describes the index part of an indexed address.
type IndexRegister struct {
	Reg     uint8 // register number 0-7
	Address bool  // An instead of Dn
	Long    bool  // .l instead of .w
	Scale   uint8 // 1, 2, 4 or 8
}

// EffectiveAddress is a decoded operand address. Which fields are
// meaningful depends on Mode.
type EffectiveAddress struct {
	Mode Mode
	Reg  uint8 // Dn/An number, or the base register of indexed forms

	// BaseSuppressed marks an extended form without base register.
	BaseSuppressed bool

	Disp  int32          // displacement or base displacement
	Outer int32          // outer displacement of memory indirect forms
	Index *IndexRegister // nil if not present or suppressed

	// Value is the absolute address, or the immediate value. Absolute
	// short addresses keep the raw 16 bit value.
	Value uint32
}

// MinCPU returns the first CPU variant supporting the addressing mode.
func (ea EffectiveAddress) MinCPU() CPU {
	if ea.Mode.Extended() {
		return M68020
	}
	return M68000
}

// AbsoluteAddress returns the 32 bit address of an absolute mode,
// sign-extending short addresses.
func (ea EffectiveAddress) AbsoluteAddress() (uint32, bool) {
	switch ea.Mode {
	case AbsoluteShort:
		return uint32(int32(int16(uint16(ea.Value)))), true
	case AbsoluteLong:
		return ea.Value, true
	default:
		return 0, false
	}
}

// Dn returns a data register direct address.
func Dn(n uint8) EffectiveAddress {
	return EffectiveAddress{Mode: DataDirect, Reg: n}
}

// An returns an address register direct address.
func An(n uint8) EffectiveAddress {
	return EffectiveAddress{Mode: AddressDirect, Reg: n}
}

// Indirect returns (An).
func Indirect(n uint8) EffectiveAddress {
	return EffectiveAddress{Mode: AddressIndirect, Reg: n}
}

// PostInc returns (An)+.
func PostInc(n uint8) EffectiveAddress {
	return EffectiveAddress{Mode: PostIncrement, Reg: n}
}

// PreDec returns -(An).
func PreDec(n uint8) EffectiveAddress {
	return EffectiveAddress{Mode: PreDecrement, Reg: n}
}

// Disp returns (d16,An).
func Disp(n uint8, disp int16) EffectiveAddress {
	return EffectiveAddress{Mode: Displacement, Reg: n, Disp: int32(disp)}
}

// AbsShort returns (xxx).w.
func AbsShort(addr uint16) EffectiveAddress {
	return EffectiveAddress{Mode: AbsoluteShort, Value: uint32(addr)}
}

// AbsLong returns (xxx).l.
func AbsLong(addr uint32) EffectiveAddress {
	return EffectiveAddress{Mode: AbsoluteLong, Value: addr}
}

// PCDisp returns (d16,PC).
func PCDisp(disp int16) EffectiveAddress {
	return EffectiveAddress{Mode: PCDisplacement, Disp: int32(disp)}
}

// Imm returns an immediate operand.
func Imm(value uint32) EffectiveAddress {
	return EffectiveAddress{Mode: Immediate, Value: value}
}
