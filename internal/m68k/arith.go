package m68k

// operandSizes maps the low 2 bits of an opmode field.
var operandSizes = [4]Size{SizeByte, SizeWord, SizeLong, SizeNone}

// decodeGroup8 decodes OR, DIVU, DIVS, SBCD, PACK and UNPK.
func (c *cursor) decodeGroup8(opcode uint16) (Instruction, error) {
	mode := eaMode(opcode)

	switch op := opMode(opcode); {
	case op == 3:
		return c.decodeToRegister(opcode, Divu, SizeWord, Dn(upperReg(opcode)), M68000)
	case op == 7:
		return c.decodeToRegister(opcode, Divs, SizeWord, Dn(upperReg(opcode)), M68000)
	case op == 4 && mode <= 1:
		return c.decodeRegisterPair(opcode, Sbcd, SizeByte, M68000)
	case op == 5 && mode <= 1:
		return c.decodeAdjust(opcode, Pack)
	case op == 6 && mode <= 1:
		return c.decodeAdjust(opcode, Unpk)
	}
	return c.decodeDataOp(opcode, Or, false)
}

// decodeAddSub decodes the ADD and SUB families sharing one layout.
func (c *cursor) decodeAddSub(opcode uint16, mnemonic, address, extended Mnemonic) (Instruction, error) {
	switch op := opMode(opcode); {
	case op == 3:
		return c.decodeToRegister(opcode, address, SizeWord, An(upperReg(opcode)), M68000)
	case op == 7:
		return c.decodeToRegister(opcode, address, SizeLong, An(upperReg(opcode)), M68000)
	case op >= 4 && eaMode(opcode) <= 1:
		return c.decodeRegisterPair(opcode, extended, operandSizes[op&3], M68000)
	}
	return c.decodeDataOp(opcode, mnemonic, true)
}

// decodeGroupB decodes CMP, CMPA, CMPM and EOR.
func (c *cursor) decodeGroupB(opcode uint16) (Instruction, error) {
	switch op := opMode(opcode); {
	case op == 3:
		return c.decodeToRegister(opcode, Cmpa, SizeWord, An(upperReg(opcode)), M68000)
	case op == 7:
		return c.decodeToRegister(opcode, Cmpa, SizeLong, An(upperReg(opcode)), M68000)

	case op < 3:
		size := operandSizes[op]
		if size == SizeByte && eaMode(opcode) == 1 {
			return c.placeholder(opcode)
		}
		return c.decodeToRegister(opcode, Cmp, size, Dn(upperReg(opcode)), M68000)

	case eaMode(opcode) == 1:
		return c.instruction(Cmpm, operandSizes[op&3], CondNone, M68000,
			EAOperand(PostInc(eaReg(opcode))), EAOperand(PostInc(upperReg(opcode))))

	default:
		if eaMode(opcode) == 7 && eaReg(opcode) > 1 {
			return c.placeholder(opcode)
		}
		size := operandSizes[op&3]
		dst, err := c.decodeEA(eaMode(opcode), eaReg(opcode), size)
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Eor, size, CondNone, M68000,
			EAOperand(Dn(upperReg(opcode))), EAOperand(dst))
	}
}

// decodeGroupC decodes AND, MULU, MULS, ABCD and EXG.
func (c *cursor) decodeGroupC(opcode uint16) (Instruction, error) {
	mode := eaMode(opcode)
	rx, ry := upperReg(opcode), eaReg(opcode)

	switch op := opMode(opcode); {
	case op == 3:
		return c.decodeToRegister(opcode, Mulu, SizeWord, Dn(rx), M68000)
	case op == 7:
		return c.decodeToRegister(opcode, Muls, SizeWord, Dn(rx), M68000)
	case op == 4 && mode <= 1:
		return c.decodeRegisterPair(opcode, Abcd, SizeByte, M68000)

	case op == 5 && mode == 0:
		return c.instruction(Exg, SizeLong, CondNone, M68000, EAOperand(Dn(rx)), EAOperand(Dn(ry)))
	case op == 5 && mode == 1:
		return c.instruction(Exg, SizeLong, CondNone, M68000, EAOperand(An(rx)), EAOperand(An(ry)))
	case op == 6 && mode == 1:
		return c.instruction(Exg, SizeLong, CondNone, M68000, EAOperand(Dn(rx)), EAOperand(An(ry)))
	case op == 6 && mode == 0:
		return c.placeholder(opcode)
	}
	return c.decodeDataOp(opcode, And, false)
}

// decodeDataOp decodes the "<ea>,Dn" and "Dn,<ea>" forms of OR, AND, ADD
// and SUB, with the direction in bit 8. Address register sources are only
// valid for the arithmetic operations in word and long size.
func (c *cursor) decodeDataOp(opcode uint16, mnemonic Mnemonic, arithmetic bool) (Instruction, error) {
	op := opMode(opcode)
	size := operandSizes[op&3]
	mode, reg := eaMode(opcode), eaReg(opcode)
	dn := EAOperand(Dn(upperReg(opcode)))

	if op < 4 {
		if mode == 1 && (!arithmetic || size == SizeByte) {
			return c.placeholder(opcode)
		}
		src, err := c.decodeEA(mode, reg, size)
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(src), dn)
	}

	if mode == 7 && reg > 1 {
		return c.placeholder(opcode)
	}
	dst, err := c.decodeEA(mode, reg, size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, M68000, dn, EAOperand(dst))
}

// decodeRegisterPair decodes the ABCD, SBCD, ADDX and SUBX forms that
// operate either on two data registers or two predecrement addresses.
func (c *cursor) decodeRegisterPair(opcode uint16, mnemonic Mnemonic, size Size, cpu CPU) (Instruction, error) {
	src, dst := registerPair(opcode)
	return c.instruction(mnemonic, size, CondNone, cpu, EAOperand(src), EAOperand(dst))
}

// decodeAdjust decodes PACK and UNPK with their adjustment word.
func (c *cursor) decodeAdjust(opcode uint16, mnemonic Mnemonic) (Instruction, error) {
	if !c.supports(M68020) {
		return c.placeholder(opcode)
	}
	w, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	src, dst := registerPair(opcode)
	return c.instruction(mnemonic, SizeNone, CondNone, M68020,
		EAOperand(src), EAOperand(dst), EAOperand(Imm(uint32(w))))
}

// registerPair returns the source in bits 2-0 and the destination in
// bits 11-9, as data registers or predecrement addresses by bit 3.
func registerPair(opcode uint16) (EffectiveAddress, EffectiveAddress) {
	if opcode&0x0008 != 0 {
		return PreDec(eaReg(opcode)), PreDec(upperReg(opcode))
	}
	return Dn(eaReg(opcode)), Dn(upperReg(opcode))
}
