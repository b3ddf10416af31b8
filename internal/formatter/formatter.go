// Package formatter renders decoded instructions in Motorola assembler syntax.
package formatter

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"

	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/symbols"
)

// Options of the formatter.
type Options struct {
	Uppercase bool // upper case mnemonics
}

// Output is a formatted instruction split into its listing columns.
type Output struct {
	Hex      string // encoded bytes like "4E75"
	Mnemonic string // mnemonic with condition and size suffix like "move.l"
	Operands string // comma separated operands like "#$2A,d0"
}

// Formatter renders instructions.
type Formatter struct {
	options Options
}

// implicitSize lists the mnemonics that are written without size suffix.
var implicitSize = map[m68k.Mnemonic]struct{}{
	m68k.Bra:     {},
	m68k.Bsr:     {},
	m68k.Bcc:     {},
	m68k.Dbcc:    {},
	m68k.Jmp:     {},
	m68k.Jsr:     {},
	m68k.Nop:     {},
	m68k.Rts:     {},
	m68k.Rte:     {},
	m68k.Rtr:     {},
	m68k.Trap:    {},
	m68k.Trapv:   {},
	m68k.Illegal: {},
	m68k.Reset:   {},
	m68k.Unlk:    {},
	m68k.Moveq:   {},
}

// New returns a new formatter.
func New(options Options) *Formatter {
	return &Formatter{options: options}
}

// Format renders the instruction. The resolver is optional and used to
// replace branch target addresses by labels.
func (f *Formatter) Format(ins m68k.Instruction, resolver symbols.Resolver) Output {
	out := Output{
		Hex: strings.ToUpper(hex.EncodeToString(ins.Raw)),
	}

	switch ins.Mnemonic {
	case m68k.Dc:
		out.Mnemonic = "dc.w"
		out.Operands = fmt.Sprintf("$%04X", immediateValue(ins))
	case m68k.ALine:
		out.Mnemonic = "dc.w"
		out.Operands = fmt.Sprintf("$%04X", 0xA000|immediateValue(ins))
	default:
		out.Mnemonic = mnemonic(ins)
		out.Operands = f.operands(ins, resolver)
	}

	if f.options.Uppercase {
		out.Mnemonic = strings.ToUpper(out.Mnemonic)
	}
	return out
}

func mnemonic(ins m68k.Instruction) string {
	name := ins.Mnemonic.Name()
	if ins.Mnemonic.Conditional() {
		name += ins.Condition.Suffix()
	}
	if _, ok := implicitSize[ins.Mnemonic]; !ok {
		name += ins.OpSize.Suffix()
	}
	return name
}

func immediateValue(ins m68k.Instruction) uint32 {
	if len(ins.Operands) == 0 {
		return 0
	}
	return ins.Operands[0].EA.Value
}

func (f *Formatter) operands(ins m68k.Instruction, resolver symbols.Resolver) string {
	parts := make([]string, 0, len(ins.Operands))
	for _, op := range ins.Operands {
		parts = append(parts, operand(ins, op, resolver))
	}
	return strings.Join(parts, ",")
}

func operand(ins m68k.Instruction, op m68k.Operand, resolver symbols.Resolver) string {
	switch op.Kind {
	case m68k.OperandEA:
		return effectiveAddress(op.EA)

	case m68k.OperandRegisterList:
		mask := op.Mask()
		if predecrementList(ins) {
			mask = bits.Reverse16(mask)
		}
		return registerList(mask)

	case m68k.OperandQuick, m68k.OperandMoveq, m68k.OperandTrapVector:
		return fmt.Sprintf("#%d", op.Value)

	case m68k.OperandDisp8, m68k.OperandDisp16, m68k.OperandDisp32:
		target := ins.Address + 2 + uint32(op.Value)
		if resolver != nil {
			if label, ok := resolver.ResolveAddress(target); ok {
				return label
			}
		}
		return fmt.Sprintf("$%08X", target)

	case m68k.OperandCCR:
		return "ccr"
	case m68k.OperandSR:
		return "sr"
	case m68k.OperandUSP:
		return "usp"

	case m68k.OperandBitField:
		return fmt.Sprintf("{%s:%s}", bitFieldParam(op.BitField.Offset), bitFieldParam(op.BitField.Width))

	default:
		return "?"
	}
}

// predecrementList returns whether the register mask of a MOVEM is in
// the reversed order used with a predecrement destination.
func predecrementList(ins m68k.Instruction) bool {
	if ins.Mnemonic != m68k.Movem || len(ins.Operands) != 2 {
		return false
	}
	dst := ins.Operands[1]
	return dst.Kind == m68k.OperandEA && dst.EA.Mode == m68k.PreDecrement
}

func bitFieldParam(p m68k.BitFieldParam) string {
	if p.Register {
		return fmt.Sprintf("d%d", p.Value)
	}
	return fmt.Sprintf("%d", p.Value)
}
