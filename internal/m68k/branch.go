package m68k

// decodeBranch decodes BRA, BSR and Bcc. An 8 bit displacement of 0
// announces a 16 bit displacement word, $FF a 32 bit displacement that
// needs a 68020.
func (c *cursor) decodeBranch(opcode uint16) (Instruction, error) {
	cond := (opcode >> 8) & 0xF

	mnemonic, condition := Bcc, conditionFromBits(cond)
	switch cond {
	case 0:
		mnemonic, condition = Bra, CondNone
	case 1:
		mnemonic, condition = Bsr, CondNone
	}

	switch disp := int8(opcode); disp {
	case 0:
		w, err := c.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(mnemonic, SizeWord, condition, M68000, Disp16(int16(w)))

	case -1:
		if !c.supports(M68020) {
			return c.placeholder(opcode)
		}
		l, err := c.readLong()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(mnemonic, SizeLong, condition, M68020, Disp32(int32(l)))

	default:
		return c.instruction(mnemonic, SizeByte, condition, M68000, Disp8(disp))
	}
}

// decodeGroup5 decodes ADDQ, SUBQ, Scc, DBcc and TRAPcc.
func (c *cursor) decodeGroup5(opcode uint16) (Instruction, error) {
	mode, reg := eaMode(opcode), eaReg(opcode)

	size, ok := standardSize(opcode)
	if ok {
		mnemonic := Addq
		if opcode&0x0100 != 0 {
			mnemonic = Subq
		}
		dst, err := c.decodeEA(mode, reg, size)
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(mnemonic, size, CondNone, M68000,
			Quick(quickValue(opcode>>9)), EAOperand(dst))
	}

	condition := conditionFromBits(opcode >> 8)

	switch {
	case mode == 1:
		w, err := c.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Dbcc, SizeWord, condition, M68000,
			EAOperand(Dn(reg)), Disp16(int16(w)))

	case mode == 7 && reg >= 2 && reg <= 4:
		return c.decodeTrapcc(opcode, condition)

	default:
		dst, err := c.decodeEA(mode, reg, SizeByte)
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Scc, SizeByte, condition, M68000, EAOperand(dst))
	}
}

// decodeTrapcc decodes TRAPcc with an optional word or long operand.
func (c *cursor) decodeTrapcc(opcode uint16, condition Condition) (Instruction, error) {
	if !c.supports(M68020) {
		return c.placeholder(opcode)
	}

	switch eaReg(opcode) {
	case 2:
		w, err := c.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Trapcc, SizeWord, condition, M68020, EAOperand(Imm(uint32(w))))

	case 3:
		l, err := c.readLong()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Trapcc, SizeLong, condition, M68020, EAOperand(Imm(l)))

	default:
		return c.instruction(Trapcc, SizeNone, condition, M68020)
	}
}
