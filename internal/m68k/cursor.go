package m68k

// cursor tracks the read position while decoding a single instruction.
type cursor struct {
	data  []byte
	base  uint32
	start int
	pos   int
	cpu   CPU
}

// address returns the address of the instruction being decoded.
func (c *cursor) address() uint32 {
	return c.base + uint32(c.start)
}

func (c *cursor) supports(required CPU) bool {
	return c.cpu.Supports(required)
}

func (c *cursor) eof(n int) error {
	available := max(len(c.data)-c.pos, 0)
	return &EOFError{Address: c.address(), Needed: n - available}
}

func (c *cursor) readWord() (uint16, error) {
	if c.pos < 0 || c.pos+2 > len(c.data) {
		return 0, c.eof(2)
	}
	w := uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1])
	c.pos += 2
	return w, nil
}

func (c *cursor) readLong() (uint32, error) {
	if c.pos < 0 || c.pos+4 > len(c.data) {
		return 0, c.eof(4)
	}
	l := uint32(c.data[c.pos])<<24 | uint32(c.data[c.pos+1])<<16 |
		uint32(c.data[c.pos+2])<<8 | uint32(c.data[c.pos+3])
	c.pos += 4
	return l, nil
}

// instruction builds the result from the consumed bytes. The required CPU
// is raised to the highest requirement of any addressing mode operand.
func (c *cursor) instruction(mnemonic Mnemonic, size Size, cond Condition, cpu CPU,
	operands ...Operand) (Instruction, error) {

	for _, op := range operands {
		if op.Kind == OperandEA {
			cpu = max(cpu, op.EA.MinCPU())
		}
	}

	raw := make([]byte, c.pos-c.start)
	copy(raw, c.data[c.start:c.pos])

	return Instruction{
		Address:   c.address(),
		Size:      len(raw),
		Raw:       raw,
		Mnemonic:  mnemonic,
		OpSize:    size,
		Condition: cond,
		Operands:  operands,
		CPU:       cpu,
	}, nil
}

// placeholder returns the dc.w substitute covering only the opcode word.
func (c *cursor) placeholder(opcode uint16) (Instruction, error) {
	c.pos = c.start + 2
	return c.instruction(Dc, SizeWord, CondNone, M68000, EAOperand(Imm(uint32(opcode))))
}

func eaMode(opcode uint16) uint8 {
	return uint8(opcode>>3) & 7
}

func eaReg(opcode uint16) uint8 {
	return uint8(opcode) & 7
}

// upperReg returns the register field in bits 11-9.
func upperReg(opcode uint16) uint8 {
	return uint8(opcode>>9) & 7
}

// opMode returns the operation mode field in bits 8-6.
func opMode(opcode uint16) uint16 {
	return (opcode >> 6) & 7
}

// standardSize decodes the common size field in bits 7-6.
func standardSize(opcode uint16) (Size, bool) {
	switch (opcode >> 6) & 3 {
	case 0:
		return SizeByte, true
	case 1:
		return SizeWord, true
	case 2:
		return SizeLong, true
	default:
		return SizeNone, false
	}
}

// quickValue converts a 3 bit quick field where 0 encodes 8.
func quickValue(bits uint16) uint8 {
	n := uint8(bits & 7)
	if n == 0 {
		return 8
	}
	return n
}
