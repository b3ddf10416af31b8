package m68k

var bitOps = [4]Mnemonic{Btst, Bchg, Bclr, Bset}

// decodeGroup0 decodes bit manipulation, MOVEP, immediate operations and CAS.
func (c *cursor) decodeGroup0(opcode uint16) (Instruction, error) {
	if opcode&0x0100 != 0 {
		if eaMode(opcode) == 1 {
			return c.decodeMovep(opcode)
		}
		return c.decodeBitOp(opcode, EAOperand(Dn(upperReg(opcode))))
	}

	sizeBits := (opcode >> 6) & 3
	switch upperReg(opcode) {
	case 0:
		return c.decodeImmediateOp(opcode, Ori, true)
	case 1:
		return c.decodeImmediateOp(opcode, Andi, true)
	case 2:
		return c.decodeImmediateOp(opcode, Subi, false)
	case 3:
		return c.decodeImmediateOp(opcode, Addi, false)
	case 4:
		return c.decodeStaticBitOp(opcode)
	case 5:
		return c.decodeImmediateOp(opcode, Eori, true)
	case 6:
		if sizeBits == 3 {
			return c.decodeCas(opcode, SizeWord)
		}
		return c.decodeImmediateOp(opcode, Cmpi, false)
	default:
		if sizeBits == 3 {
			return c.decodeCas(opcode, SizeLong)
		}
		// MOVES
		return c.placeholder(opcode)
	}
}

// decodeImmediateOp decodes ORI, ANDI, SUBI, ADDI, EORI and CMPI. The
// logical operations address CCR with byte and SR with word size when
// the destination field holds the immediate mode.
func (c *cursor) decodeImmediateOp(opcode uint16, mnemonic Mnemonic, statusForms bool) (Instruction, error) {
	size, ok := standardSize(opcode)
	if !ok {
		// CHK2, CMP2 and CAS.B
		return c.placeholder(opcode)
	}
	mode, reg := eaMode(opcode), eaReg(opcode)

	if statusForms && mode == 7 && reg == 4 {
		var target Operand
		switch size {
		case SizeByte:
			target = CCR()
		case SizeWord:
			target = SR()
		default:
			return c.placeholder(opcode)
		}
		imm, err := c.decodeImmediate(size)
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(imm), target)
	}

	imm, err := c.decodeImmediate(size)
	if err != nil {
		return Instruction{}, err
	}
	dst, err := c.decodeEA(mode, reg, size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(imm), EAOperand(dst))
}

// decodeStaticBitOp decodes BTST, BCHG, BCLR and BSET with an immediate
// bit number.
func (c *cursor) decodeStaticBitOp(opcode uint16) (Instruction, error) {
	w, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	return c.decodeBitOp(opcode, EAOperand(Imm(uint32(w&0xFF))))
}

// decodeBitOp decodes the destination of a bit operation. Data register
// destinations operate on a long, memory destinations on a byte.
func (c *cursor) decodeBitOp(opcode uint16, bit Operand) (Instruction, error) {
	mnemonic := bitOps[(opcode>>6)&3]
	mode, reg := eaMode(opcode), eaReg(opcode)

	size := SizeByte
	if mode == 0 {
		size = SizeLong
	}

	dst, err := c.decodeEA(mode, reg, size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, M68000, bit, EAOperand(dst))
}

// decodeMovep decodes MOVEP between a data register and alternate bytes
// of memory.
func (c *cursor) decodeMovep(opcode uint16) (Instruction, error) {
	mode := opMode(opcode)
	size := SizeWord
	if mode&1 != 0 {
		size = SizeLong
	}

	w, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	mem := EAOperand(Disp(eaReg(opcode), int16(w)))
	dn := EAOperand(Dn(upperReg(opcode)))

	if mode&2 != 0 {
		return c.instruction(Movep, size, CondNone, M68000, dn, mem)
	}
	return c.instruction(Movep, size, CondNone, M68000, mem, dn)
}

// decodeCas decodes CAS Dc,Du,<ea> in word or long size, selected by
// bit 9. The byte form is not decoded.
func (c *cursor) decodeCas(opcode uint16, size Size) (Instruction, error) {
	if !c.supports(M68020) {
		return c.placeholder(opcode)
	}
	mode, reg := eaMode(opcode), eaReg(opcode)
	// CAS2 occupies the immediate mode
	if mode <= 1 || (mode == 7 && reg > 1) {
		return c.placeholder(opcode)
	}

	ext, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	compare := uint8(ext) & 7
	update := uint8(ext>>6) & 7

	ea, err := c.decodeEA(mode, reg, size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(Cas, size, CondNone, M68020,
		EAOperand(Dn(compare)), EAOperand(Dn(update)), EAOperand(ea))
}
