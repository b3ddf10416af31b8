package m68k

// OperandKind identifies the shape of an operand.
type OperandKind uint8

// Operand kinds.
const (
	OperandEA           OperandKind = iota // effective address
	OperandRegisterList                    // MOVEM register mask
	OperandQuick                           // quick immediate 1-8
	OperandMoveq                           // MOVEQ signed byte immediate
	OperandDisp8                           // 8 bit branch displacement
	OperandDisp16                          // 16 bit branch displacement
	OperandDisp32                          // 32 bit branch displacement
	OperandTrapVector                      // TRAP vector 0-15
	OperandCCR                             // condition code register
	OperandSR                              // status register
	OperandUSP                             // user stack pointer
	OperandBitField                        // {offset:width}
)

// BitFieldParam is the offset or width of a bit field. It is either a
// literal value or a data register number.
type BitFieldParam struct {
	Register bool
	Value    uint8 // literal 0-32 or register number
}

// BitField is a bit field specifier of the BFxxx instructions. A literal
// width encoded as 0 is stored as 32.
type BitField struct {
	Offset BitFieldParam
	Width  BitFieldParam
}

// Operand is one instruction operand. Which fields are meaningful
// depends on Kind.
type Operand struct {
	Kind     OperandKind
	EA       EffectiveAddress
	Value    int32 // quick value, moveq value, displacement, trap vector or register mask
	BitField BitField
}

// EAOperand wraps an effective address.
func EAOperand(ea EffectiveAddress) Operand {
	return Operand{Kind: OperandEA, EA: ea}
}

// RegisterList returns a MOVEM register mask operand. The mask is kept
// in its encoded bit order.
func RegisterList(mask uint16) Operand {
	return Operand{Kind: OperandRegisterList, Value: int32(mask)}
}

// Quick returns a quick immediate operand.
func Quick(n uint8) Operand {
	return Operand{Kind: OperandQuick, Value: int32(n)}
}

// MoveqImmediate returns the sign-extended MOVEQ immediate.
func MoveqImmediate(n int8) Operand {
	return Operand{Kind: OperandMoveq, Value: int32(n)}
}

// Disp8 returns an 8 bit branch displacement.
func Disp8(d int8) Operand {
	return Operand{Kind: OperandDisp8, Value: int32(d)}
}

// Disp16 returns a 16 bit branch displacement.
func Disp16(d int16) Operand {
	return Operand{Kind: OperandDisp16, Value: int32(d)}
}

// Disp32 returns a 32 bit branch displacement.
func Disp32(d int32) Operand {
	return Operand{Kind: OperandDisp32, Value: d}
}

// TrapVector returns a TRAP vector operand.
func TrapVector(n uint8) Operand {
	return Operand{Kind: OperandTrapVector, Value: int32(n)}
}

// CCR returns the condition code register operand.
func CCR() Operand {
	return Operand{Kind: OperandCCR}
}

// SR returns the status register operand.
func SR() Operand {
	return Operand{Kind: OperandSR}
}

// USP returns the user stack pointer operand.
func USP() Operand {
	return Operand{Kind: OperandUSP}
}

// BitFieldOperand returns a bit field specifier operand.
func BitFieldOperand(offset, width BitFieldParam) Operand {
	return Operand{Kind: OperandBitField, BitField: BitField{Offset: offset, Width: width}}
}

// Mask returns the register mask of a register list operand.
func (o Operand) Mask() uint16 {
	return uint16(o.Value)
}

// Displacement reports whether the operand is a branch displacement.
func (o Operand) Displacement() bool {
	return o.Kind == OperandDisp8 || o.Kind == OperandDisp16 || o.Kind == OperandDisp32
}
