package m68k

// fixedOpcodes are group 4 instructions without operands.
var fixedOpcodes = map[uint16]Mnemonic{
	0x4AFC: Illegal,
	0x4E70: Reset,
	0x4E71: Nop,
	0x4E73: Rte,
	0x4E75: Rts,
	0x4E76: Trapv,
	0x4E77: Rtr,
}

// decodeGroup4 decodes the miscellaneous instruction group. Checks are
// ordered from the most to the least specific bit pattern.
func (c *cursor) decodeGroup4(opcode uint16) (Instruction, error) {
	if mnemonic, ok := fixedOpcodes[opcode]; ok {
		return c.instruction(mnemonic, SizeNone, CondNone, M68000)
	}

	switch {
	case opcode == 0x4E72:
		w, err := c.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Stop, SizeNone, CondNone, M68000, EAOperand(Imm(uint32(w))))

	case opcode&0xFFF0 == 0x4E40:
		return c.instruction(Trap, SizeNone, CondNone, M68000, TrapVector(uint8(opcode&0xF)))

	case opcode&0xFFF8 == 0x4E50:
		return c.decodeLink(opcode, SizeWord)

	case opcode&0xFFF8 == 0x4808:
		return c.decodeLink(opcode, SizeLong)

	case opcode&0xFFF8 == 0x4E58:
		return c.instruction(Unlk, SizeNone, CondNone, M68000, EAOperand(An(eaReg(opcode))))

	case opcode&0xFFF0 == 0x4E60:
		an := EAOperand(An(eaReg(opcode)))
		if opcode&0x0008 != 0 {
			return c.instruction(Move, SizeLong, CondNone, M68000, USP(), an)
		}
		return c.instruction(Move, SizeLong, CondNone, M68000, an, USP())

	case opcode&0xFFF0 == 0x4E70:
		// RTD, MOVEC
		return c.placeholder(opcode)

	case opcode&0xFFF8 == 0x4840:
		return c.instruction(Swap, SizeWord, CondNone, M68000, EAOperand(Dn(eaReg(opcode))))

	case opcode&0xFFF8 == 0x4848:
		// BKPT
		return c.placeholder(opcode)

	case opcode&0xFFC0 == 0x4840:
		return c.decodeControlEA(opcode, Pea, SizeLong)

	case opcode&0xFFF8 == 0x49C0:
		if !c.supports(M68020) {
			return c.placeholder(opcode)
		}
		return c.instruction(Extb, SizeLong, CondNone, M68020, EAOperand(Dn(eaReg(opcode))))

	case opcode&0xFFB8 == 0x4880:
		size := SizeWord
		if opcode&0x0040 != 0 {
			size = SizeLong
		}
		return c.instruction(Ext, size, CondNone, M68000, EAOperand(Dn(eaReg(opcode))))

	case opcode&0xFB80 == 0x4880:
		return c.decodeMovem(opcode)

	case opcode&0xF1C0 == 0x41C0:
		if !controlMode(opcode) {
			return c.placeholder(opcode)
		}
		return c.decodeToRegister(opcode, Lea, SizeLong, An(upperReg(opcode)), M68000)

	case opcode&0xF1C0 == 0x4180:
		return c.decodeToRegister(opcode, Chk, SizeWord, Dn(upperReg(opcode)), M68000)

	case opcode&0xF1C0 == 0x4100:
		if !c.supports(M68020) {
			return c.placeholder(opcode)
		}
		return c.decodeToRegister(opcode, Chk, SizeLong, Dn(upperReg(opcode)), M68020)

	case opcode&0xFFC0 == 0x4EC0:
		return c.decodeControlEA(opcode, Jmp, SizeNone)

	case opcode&0xFFC0 == 0x4E80:
		return c.decodeControlEA(opcode, Jsr, SizeNone)

	case opcode&0xFFC0 == 0x4800:
		return c.decodeUnary(opcode, Nbcd, SizeByte)

	case opcode&0xFFC0 == 0x4AC0:
		return c.decodeUnary(opcode, Tas, SizeByte)

	case opcode&0xFFC0 == 0x40C0:
		return c.decodeStatusMove(opcode, SR(), false, M68000)

	case opcode&0xFFC0 == 0x42C0:
		if !c.supports(M68010) {
			return c.placeholder(opcode)
		}
		return c.decodeStatusMove(opcode, CCR(), false, M68010)

	case opcode&0xFFC0 == 0x44C0:
		return c.decodeStatusMove(opcode, CCR(), true, M68000)

	case opcode&0xFFC0 == 0x46C0:
		return c.decodeStatusMove(opcode, SR(), true, M68000)
	}

	return c.decodeSingleOperand(opcode)
}

// decodeSingleOperand decodes NEGX, CLR, NEG, NOT and TST.
func (c *cursor) decodeSingleOperand(opcode uint16) (Instruction, error) {
	size, ok := standardSize(opcode)
	if !ok {
		return c.placeholder(opcode)
	}

	switch (opcode >> 8) & 0xF {
	case 0x0:
		return c.decodeUnary(opcode, Negx, size)
	case 0x2:
		return c.decodeUnary(opcode, Clr, size)
	case 0x4:
		return c.decodeUnary(opcode, Neg, size)
	case 0x6:
		return c.decodeUnary(opcode, Not, size)
	case 0xA:
		return c.decodeUnary(opcode, Tst, size)
	default:
		return c.placeholder(opcode)
	}
}

func (c *cursor) decodeUnary(opcode uint16, mnemonic Mnemonic, size Size) (Instruction, error) {
	ea, err := c.decodeEA(eaMode(opcode), eaReg(opcode), size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(ea))
}

// decodeControlEA decodes instructions taking a single control
// addressing mode operand.
func (c *cursor) decodeControlEA(opcode uint16, mnemonic Mnemonic, size Size) (Instruction, error) {
	if !controlMode(opcode) {
		return c.placeholder(opcode)
	}
	return c.decodeUnary(opcode, mnemonic, size)
}

// controlMode returns whether the addressing mode of the opcode is a
// control mode, a memory address without side effects.
func controlMode(opcode uint16) bool {
	switch mode := eaMode(opcode); mode {
	case 0, 1, 3, 4:
		return false
	case 7:
		return eaReg(opcode) < 4
	default:
		return true
	}
}

// decodeToRegister decodes "<ea>,Rn" forms with the register in bits 11-9.
func (c *cursor) decodeToRegister(opcode uint16, mnemonic Mnemonic, size Size,
	dst EffectiveAddress, cpu CPU) (Instruction, error) {

	src, err := c.decodeEA(eaMode(opcode), eaReg(opcode), size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, cpu, EAOperand(src), EAOperand(dst))
}

// decodeStatusMove decodes MOVE from and to SR and CCR.
func (c *cursor) decodeStatusMove(opcode uint16, reg Operand, toStatus bool, cpu CPU) (Instruction, error) {
	ea, err := c.decodeEA(eaMode(opcode), eaReg(opcode), SizeWord)
	if err != nil {
		return Instruction{}, err
	}
	if toStatus {
		return c.instruction(Move, SizeWord, CondNone, cpu, EAOperand(ea), reg)
	}
	return c.instruction(Move, SizeWord, CondNone, cpu, reg, EAOperand(ea))
}

// decodeLink decodes LINK An,#displacement, the long form needs a 68020.
func (c *cursor) decodeLink(opcode uint16, size Size) (Instruction, error) {
	an := EAOperand(An(eaReg(opcode)))

	if size == SizeWord {
		w, err := c.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return c.instruction(Link, SizeWord, CondNone, M68000, an, EAOperand(Imm(uint32(w))))
	}

	if !c.supports(M68020) {
		return c.placeholder(opcode)
	}
	l, err := c.readLong()
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(Link, SizeLong, CondNone, M68020, an, EAOperand(Imm(l)))
}

// decodeMovem decodes MOVEM. The register mask word precedes any
// extension words of the addressing mode and is passed on unmodified,
// its bit order depends on the addressing mode it is paired with.
func (c *cursor) decodeMovem(opcode uint16) (Instruction, error) {
	size := SizeWord
	if opcode&0x0040 != 0 {
		size = SizeLong
	}
	toRegisters := opcode&0x0400 != 0
	mode, reg := eaMode(opcode), eaReg(opcode)

	switch {
	case mode <= 1:
		return c.placeholder(opcode)
	case toRegisters && mode == 4:
		return c.placeholder(opcode)
	case !toRegisters && mode == 3:
		return c.placeholder(opcode)
	case mode == 7 && reg == 4:
		return c.placeholder(opcode)
	}

	mask, err := c.readWord()
	if err != nil {
		return Instruction{}, err
	}
	ea, err := c.decodeEA(mode, reg, size)
	if err != nil {
		return Instruction{}, err
	}

	if toRegisters {
		return c.instruction(Movem, size, CondNone, M68000, EAOperand(ea), RegisterList(mask))
	}
	return c.instruction(Movem, size, CondNone, M68000, RegisterList(mask), EAOperand(ea))
}
