package m68k

// moveSizes maps the MOVE size field in bits 13-12.
var moveSizes = [4]Size{SizeNone, SizeByte, SizeLong, SizeWord}

// decodeMove decodes MOVE and MOVEA. The destination field stores the
// register before the mode, reversed to the source field.
func (c *cursor) decodeMove(opcode uint16) (Instruction, error) {
	size := moveSizes[(opcode>>12)&3]
	dstReg := upperReg(opcode)
	dstMode := uint8(opcode>>6) & 7

	mnemonic := Move
	if dstMode == 1 {
		if size == SizeByte {
			return c.placeholder(opcode)
		}
		mnemonic = Movea
	}
	if dstMode == 7 && dstReg > 1 {
		return Instruction{}, &InvalidEAError{Address: c.address(), Mode: dstMode, Reg: dstReg}
	}

	src, err := c.decodeEA(eaMode(opcode), eaReg(opcode), size)
	if err != nil {
		return Instruction{}, err
	}
	dst, err := c.decodeEA(dstMode, dstReg, size)
	if err != nil {
		return Instruction{}, err
	}
	return c.instruction(mnemonic, size, CondNone, M68000, EAOperand(src), EAOperand(dst))
}

// decodeMoveq decodes MOVEQ #imm,Dn. Bit 8 set is reserved.
func (c *cursor) decodeMoveq(opcode uint16) (Instruction, error) {
	if opcode&0x0100 != 0 {
		return c.placeholder(opcode)
	}
	return c.instruction(Moveq, SizeLong, CondNone, M68000,
		MoveqImmediate(int8(opcode)), EAOperand(Dn(upperReg(opcode))))
}
