package m68k

// Extension word fields.
const (
	extIndexAddress  = 0x8000 // index register is An
	extIndexLong     = 0x0800 // index size is long
	extFullFormat    = 0x0100 // full extension word instead of brief
	extBaseSuppress  = 0x0080
	extIndexSuppress = 0x0040
)

// decodeEA decodes the addressing mode given by the mode and register
// fields, reading any extension words from the instruction stream.
func (c *cursor) decodeEA(mode, reg uint8, size Size) (EffectiveAddress, error) {
	switch mode {
	case 0:
		return Dn(reg), nil
	case 1:
		return An(reg), nil
	case 2:
		return Indirect(reg), nil
	case 3:
		return PostInc(reg), nil
	case 4:
		return PreDec(reg), nil

	case 5:
		w, err := c.readWord()
		if err != nil {
			return EffectiveAddress{}, err
		}
		return Disp(reg, int16(w)), nil

	case 6:
		return c.decodeIndexed(false, reg)

	default:
		return c.decodeSpecialEA(reg, size)
	}
}

// decodeSpecialEA decodes mode 7, where the register field selects the shape.
func (c *cursor) decodeSpecialEA(reg uint8, size Size) (EffectiveAddress, error) {
	switch reg {
	case 0:
		w, err := c.readWord()
		if err != nil {
			return EffectiveAddress{}, err
		}
		return AbsShort(w), nil

	case 1:
		l, err := c.readLong()
		if err != nil {
			return EffectiveAddress{}, err
		}
		return AbsLong(l), nil

	case 2:
		w, err := c.readWord()
		if err != nil {
			return EffectiveAddress{}, err
		}
		return PCDisp(int16(w)), nil

	case 3:
		return c.decodeIndexed(true, reg)

	case 4:
		return c.decodeImmediate(size)

	default:
		return EffectiveAddress{}, &InvalidEAError{Address: c.address(), Mode: 7, Reg: reg}
	}
}

func (c *cursor) decodeImmediate(size Size) (EffectiveAddress, error) {
	if size == SizeLong {
		l, err := c.readLong()
		if err != nil {
			return EffectiveAddress{}, err
		}
		return Imm(l), nil
	}

	w, err := c.readWord()
	if err != nil {
		return EffectiveAddress{}, err
	}
	if size == SizeByte {
		w &= 0xFF
	}
	return Imm(uint32(w)), nil
}

// decodeIndexed decodes mode 6 and mode 7 register 3. The extension word
// selects between the brief format and the 68020 full format.
func (c *cursor) decodeIndexed(pc bool, reg uint8) (EffectiveAddress, error) {
	ext, err := c.readWord()
	if err != nil {
		return EffectiveAddress{}, err
	}

	if ext&extFullFormat == 0 {
		ea := EffectiveAddress{
			Mode:  Indexed,
			Reg:   reg,
			Disp:  int32(int8(ext)),
			Index: indexFromExtension(ext),
		}
		if pc {
			ea.Mode = PCIndexed
			ea.Reg = 0
		}
		return ea, nil
	}

	if !c.supports(M68020) {
		return EffectiveAddress{}, c.invalidIndexed(pc, reg)
	}
	return c.decodeFullExtension(ext, pc, reg)
}

func (c *cursor) invalidIndexed(pc bool, reg uint8) error {
	if pc {
		return &InvalidEAError{Address: c.address(), Mode: 7, Reg: 3}
	}
	return &InvalidEAError{Address: c.address(), Mode: 6, Reg: reg}
}

func indexFromExtension(ext uint16) *IndexRegister {
	return &IndexRegister{
		Reg:     uint8(ext>>12) & 7,
		Address: ext&extIndexAddress != 0,
		Long:    ext&extIndexLong != 0,
		Scale:   1 << ((ext >> 9) & 3),
	}
}

// decodeFullExtension decodes the full extension word format: optional
// base register, base displacement, optional index and memory indirection
// with outer displacement.
func (c *cursor) decodeFullExtension(ext uint16, pc bool, reg uint8) (EffectiveAddress, error) {
	ea := EffectiveAddress{
		BaseSuppressed: ext&extBaseSuppress != 0,
	}
	if !pc {
		ea.Reg = reg
	}
	if ext&extIndexSuppress == 0 {
		ea.Index = indexFromExtension(ext)
	}

	selector := ext & 7
	if selector == 4 {
		return EffectiveAddress{}, c.invalidIndexed(pc, reg)
	}

	bd, err := c.readDisplacement((ext >> 4) & 3)
	if err != nil {
		return EffectiveAddress{}, err
	}
	ea.Disp = bd

	switch {
	case selector == 0:
		ea.Mode = BaseDisplacement
	case selector&4 == 0:
		ea.Mode = MemoryIndirectPre
	default:
		ea.Mode = MemoryIndirectPost
	}

	if selector != 0 {
		od, err := c.readDisplacement(selector & 3)
		if err != nil {
			return EffectiveAddress{}, err
		}
		ea.Outer = od
	}

	if pc {
		ea.Mode += PCBaseDisplacement - BaseDisplacement
	}
	return ea, nil
}

// readDisplacement reads a base or outer displacement by its 2 bit size
// selector: 0 and 1 are null, 2 is a sign-extended word, 3 a long.
func (c *cursor) readDisplacement(sizeBits uint16) (int32, error) {
	switch sizeBits {
	case 2:
		w, err := c.readWord()
		if err != nil {
			return 0, err
		}
		return int32(int16(w)), nil

	case 3:
		l, err := c.readLong()
		if err != nil {
			return 0, err
		}
		return int32(l), nil

	default:
		return 0, nil
	}
}
