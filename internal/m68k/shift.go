package m68k

// shifts maps the shift type to its right and left mnemonic.
var shifts = [4][2]Mnemonic{
	{Asr, Asl},
	{Lsr, Lsl},
	{Roxr, Roxl},
	{Ror, Rol},
}

var bitFieldOps = [8]Mnemonic{Bftst, Bfextu, Bfchg, Bfexts, Bfclr, Bfffo, Bfset, Bfins}

// decodeGroupE decodes shifts, rotates and the bit field instructions.
func (c *cursor) decodeGroupE(opcode uint16) (Instruction, error) {
	left := (opcode >> 8) & 1

	size, ok := standardSize(opcode)
	if ok {
		mnemonic := shifts[(opcode>>3)&3][left]
		dst := EAOperand(Dn(eaReg(opcode)))

		if opcode&0x0020 != 0 {
			return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(Dn(upperReg(opcode))), dst)
		}
		return c.instruction(mnemonic, size, CondNone, M68000, Quick(quickValue(opcode>>9)), dst)
	}

	if opcode&0x0800 != 0 {
		return c.decodeBitField(opcode)
	}

	// memory shift by one bit
	mode, reg := eaMode(opcode), eaReg(opcode)
	if mode <= 1 || (mode == 7 && reg > 1) {
		return c.placeholder(opcode)
	}
	dst, err := c.decodeEA(mode, reg, SizeWord)
	if err != nil {
		return Instruction{}, err
	}
	mnemonic := shifts[(opcode>>9)&3][left]
	return c.instruction(mnemonic, SizeWord, CondNone, M68000, EAOperand(dst))
}

// decodeBitField decodes BFTST, BFEXTU, BFCHG, BFEXTS, BFCLR, BFFFO,
// BFSET and BFINS. The extension word holds the data register in bits
// 14-12, the offset in bits 10-6 and the width in bits 4-0, with bits 11
// and 5 selecting a register instead of a literal.
func (c *cursor) decodeBitField(opcode uint16) (Instruction, error) {
	if !c.supports(M68020) {
		return c.placeholder(opcode)
	}
	mode, reg := eaMode(opcode), eaReg(opcode)
	mnemonic := bitFieldOps[(opcode>>8)&7]
	switch {
	case mode == 1, mode == 3, mode == 4:
		return c.placeholder(opcode)
	case mode == 7 && reg > 3:
		return c.placeholder(opcode)
	case mode == 7 && reg > 1 && bitFieldAlters(mnemonic):
		return c.placeholder(opcode)
	}

	ext, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	ea, err := c.decodeEA(mode, reg, SizeNone)
	if err != nil {
		return Instruction{}, err
	}

	var offset, width BitFieldParam
	if ext&0x0800 != 0 {
		offset = BitFieldParam{Register: true, Value: uint8(ext>>6) & 7}
	} else {
		offset = BitFieldParam{Value: uint8(ext>>6) & 0x1F}
	}
	if ext&0x0020 != 0 {
		width = BitFieldParam{Register: true, Value: uint8(ext) & 7}
	} else {
		width = BitFieldParam{Value: uint8(ext) & 0x1F}
		if width.Value == 0 {
			width.Value = 32
		}
	}

	field := BitFieldOperand(offset, width)
	dn := EAOperand(Dn(uint8(ext>>12) & 7))

	switch mnemonic {
	case Bfextu, Bfexts, Bfffo:
		return c.instruction(mnemonic, SizeNone, CondNone, M68020, EAOperand(ea), field, dn)
	case Bfins:
		return c.instruction(mnemonic, SizeNone, CondNone, M68020, dn, EAOperand(ea), field)
	default:
		return c.instruction(mnemonic, SizeNone, CondNone, M68020, EAOperand(ea), field)
	}
}

// bitFieldAlters returns whether the bit field instruction writes to its
// operand, which excludes the PC relative modes.
func bitFieldAlters(m Mnemonic) bool {
	switch m {
	case Bfchg, Bfclr, Bfset, Bfins:
		return true
	default:
		return false
	}
}
