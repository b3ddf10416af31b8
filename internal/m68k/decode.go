package m68k

import "errors"

// Decode decodes the instruction at offset of data. The returned
// instruction address is base plus offset. Opcode words that have no
// instruction, or that need a higher CPU variant than cpu, decode as a
// one word dc.w placeholder. Errors are returned for truncated encodings
// and invalid addressing modes.
func Decode(data []byte, offset int, base uint32, cpu CPU) (Instruction, error) {
	c := &cursor{
		data:  data,
		base:  base,
		start: offset,
		pos:   offset,
		cpu:   cpu,
	}

	opcode, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	return c.decode(opcode)
}

// DecodeStrict works like Decode but reports placeholders as
// UnknownOpcodeError.
func DecodeStrict(data []byte, offset int, base uint32, cpu CPU) (Instruction, error) {
	ins, err := Decode(data, offset, base, cpu)
	if err != nil {
		return ins, err
	}
	if ins.Placeholder() {
		return Instruction{}, &UnknownOpcodeError{Address: ins.Address, Opcode: uint16(ins.Operands[0].EA.Value)}
	}
	return ins, nil
}

// Step is one entry of a sequential decode of a buffer. Err is set if the
// bytes at Offset could not be decoded, Length then holds the number of
// bytes skipped.
type Step struct {
	Offset      int
	Length      int
	Instruction Instruction
	Err         error
}

// DecodeAll decodes data sequentially from offset 0 using the standard
// recovery: a truncated encoding consumes the remaining bytes, any other
// error skips one word.
func DecodeAll(data []byte, base uint32, cpu CPU) []Step {
	var steps []Step
	for offset := 0; offset < len(data); {
		ins, err := Decode(data, offset, base, cpu)
		if err == nil {
			steps = append(steps, Step{Offset: offset, Length: ins.Size, Instruction: ins})
			offset += ins.Size
			continue
		}

		length := 2
		if errors.Is(err, ErrUnexpectedEOF) || offset+2 > len(data) {
			length = len(data) - offset
		}
		steps = append(steps, Step{Offset: offset, Length: length, Err: err})
		offset += length
	}
	return steps
}

// decode dispatches on the top 4 bits of the opcode word.
func (c *cursor) decode(opcode uint16) (Instruction, error) {
	switch opcode >> 12 {
	case 0x0:
		return c.decodeGroup0(opcode)
	case 0x1, 0x2, 0x3:
		return c.decodeMove(opcode)
	case 0x4:
		return c.decodeGroup4(opcode)
	case 0x5:
		return c.decodeGroup5(opcode)
	case 0x6:
		return c.decodeBranch(opcode)
	case 0x7:
		return c.decodeMoveq(opcode)
	case 0x8:
		return c.decodeGroup8(opcode)
	case 0x9:
		return c.decodeAddSub(opcode, Sub, Suba, Subx)
	case 0xA:
		return c.instruction(ALine, SizeNone, CondNone, M68000, EAOperand(Imm(uint32(opcode&0x0FFF))))
	case 0xB:
		return c.decodeGroupB(opcode)
	case 0xC:
		return c.decodeGroupC(opcode)
	case 0xD:
		return c.decodeAddSub(opcode, Add, Adda, Addx)
	case 0xE:
		return c.decodeGroupE(opcode)
	default:
		// F-line: coprocessor and emulator traps
		return c.placeholder(opcode)
	}
}
