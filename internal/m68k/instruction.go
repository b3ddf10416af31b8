package m68k

// Size is the operation size of an instruction.
type Size uint8

// Operation sizes.
const (
	SizeNone Size = iota
	SizeByte
	SizeWord
	SizeLong
)

// Suffix returns the assembler size suffix like ".w".
func (s Size) Suffix() string {
	switch s {
	case SizeByte:
		return ".b"
	case SizeWord:
		return ".w"
	case SizeLong:
		return ".l"
	default:
		return ""
	}
}

// Condition is a condition code of Bcc, DBcc, Scc and TRAPcc.
type Condition uint8

// Condition codes. CondNone marks an instruction without condition, the
// others are ordered by their 4 bit encoding.
const (
	CondNone Condition = iota
	CondT
	CondF
	CondHI
	CondLS
	CondCC
	CondCS
	CondNE
	CondEQ
	CondVC
	CondVS
	CondPL
	CondMI
	CondGE
	CondLT
	CondGT
	CondLE
)

var conditionSuffixes = [...]string{
	CondT:  "t",
	CondF:  "f",
	CondHI: "hi",
	CondLS: "ls",
	CondCC: "cc",
	CondCS: "cs",
	CondNE: "ne",
	CondEQ: "eq",
	CondVC: "vc",
	CondVS: "vs",
	CondPL: "pl",
	CondMI: "mi",
	CondGE: "ge",
	CondLT: "lt",
	CondGT: "gt",
	CondLE: "le",
}

// conditionFromBits converts the 4 bit condition field.
func conditionFromBits(bits uint16) Condition {
	return CondT + Condition(bits&0xF)
}

// Suffix returns the mnemonic suffix like "eq".
func (c Condition) Suffix() string {
	if c == CondNone || int(c) >= len(conditionSuffixes) {
		return ""
	}
	return conditionSuffixes[c]
}

// Mnemonic identifies an instruction.
type Mnemonic uint8

// Instruction mnemonics.
const (
	Dc Mnemonic = iota // declare constant placeholder
	ALine
	Abcd
	Add
	Adda
	Addi
	Addq
	Addx
	And
	Andi
	Asl
	Asr
	Bcc
	Bchg
	Bclr
	Bfchg
	Bfclr
	Bfexts
	Bfextu
	Bfffo
	Bfins
	Bfset
	Bftst
	Bra
	Bset
	Bsr
	Btst
	Cas
	Chk
	Clr
	Cmp
	Cmpa
	Cmpi
	Cmpm
	Dbcc
	Divs
	Divu
	Eor
	Eori
	Exg
	Ext
	Extb
	Illegal
	Jmp
	Jsr
	Lea
	Link
	Lsl
	Lsr
	Move
	Movea
	Movem
	Movep
	Moveq
	Muls
	Mulu
	Nbcd
	Neg
	Negx
	Nop
	Not
	Or
	Ori
	Pack
	Pea
	Reset
	Rol
	Ror
	Roxl
	Roxr
	Rte
	Rtr
	Rts
	Sbcd
	Scc
	Stop
	Sub
	Suba
	Subi
	Subq
	Subx
	Swap
	Tas
	Trap
	Trapcc
	Trapv
	Tst
	Unlk
	Unpk
)

var mnemonicNames = [...]string{
	Dc:      "dc",
	ALine:   "aline",
	Abcd:    "abcd",
	Add:     "add",
	Adda:    "adda",
	Addi:    "addi",
	Addq:    "addq",
	Addx:    "addx",
	And:     "and",
	Andi:    "andi",
	Asl:     "asl",
	Asr:     "asr",
	Bcc:     "b",
	Bchg:    "bchg",
	Bclr:    "bclr",
	Bfchg:   "bfchg",
	Bfclr:   "bfclr",
	Bfexts:  "bfexts",
	Bfextu:  "bfextu",
	Bfffo:   "bfffo",
	Bfins:   "bfins",
	Bfset:   "bfset",
	Bftst:   "bftst",
	Bra:     "bra",
	Bset:    "bset",
	Bsr:     "bsr",
	Btst:    "btst",
	Cas:     "cas",
	Chk:     "chk",
	Clr:     "clr",
	Cmp:     "cmp",
	Cmpa:    "cmpa",
	Cmpi:    "cmpi",
	Cmpm:    "cmpm",
	Dbcc:    "db",
	Divs:    "divs",
	Divu:    "divu",
	Eor:     "eor",
	Eori:    "eori",
	Exg:     "exg",
	Ext:     "ext",
	Extb:    "extb",
	Illegal: "illegal",
	Jmp:     "jmp",
	Jsr:     "jsr",
	Lea:     "lea",
	Link:    "link",
	Lsl:     "lsl",
	Lsr:     "lsr",
	Move:    "move",
	Movea:   "movea",
	Movem:   "movem",
	Movep:   "movep",
	Moveq:   "moveq",
	Muls:    "muls",
	Mulu:    "mulu",
	Nbcd:    "nbcd",
	Neg:     "neg",
	Negx:    "negx",
	Nop:     "nop",
	Not:     "not",
	Or:      "or",
	Ori:     "ori",
	Pack:    "pack",
	Pea:     "pea",
	Reset:   "reset",
	Rol:     "rol",
	Ror:     "ror",
	Roxl:    "roxl",
	Roxr:    "roxr",
	Rte:     "rte",
	Rtr:     "rtr",
	Rts:     "rts",
	Sbcd:    "sbcd",
	Scc:     "s",
	Stop:    "stop",
	Sub:     "sub",
	Suba:    "suba",
	Subi:    "subi",
	Subq:    "subq",
	Subx:    "subx",
	Swap:    "swap",
	Tas:     "tas",
	Trap:    "trap",
	Trapcc:  "trap",
	Trapv:   "trapv",
	Tst:     "tst",
	Unlk:    "unlk",
	Unpk:    "unpk",
}

// Name returns the base mnemonic text without condition or size suffix.
func (m Mnemonic) Name() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "?"
}

func (m Mnemonic) String() string {
	return m.Name()
}

// Conditional returns whether the mnemonic takes a condition suffix.
func (m Mnemonic) Conditional() bool {
	switch m {
	case Bcc, Dbcc, Scc, Trapcc:
		return true
	default:
		return false
	}
}

// ControlFlow returns whether the instruction transfers control to a
// target address encoded in its operands.
func (m Mnemonic) ControlFlow() bool {
	switch m {
	case Bra, Bsr, Bcc, Dbcc, Jmp, Jsr:
		return true
	default:
		return false
	}
}

// Instruction is a fully decoded instruction. It is not modified after
// the decoder returns it.
type Instruction struct {
	Address   uint32 // base address plus buffer offset
	Size      int    // encoded length in bytes, always even
	Raw       []byte // copy of the encoded bytes
	Mnemonic  Mnemonic
	OpSize    Size
	Condition Condition
	Operands  []Operand
	CPU       CPU // first CPU variant supporting this encoding
}

// Placeholder returns whether the instruction is the dc.w substitute for
// an unrecognized opcode word.
func (ins Instruction) Placeholder() bool {
	return ins.Mnemonic == Dc
}

// BranchTarget returns the address a control flow instruction transfers
// to, if it can be determined statically.
func (ins Instruction) BranchTarget() (uint32, bool) {
	if !ins.Mnemonic.ControlFlow() {
		return 0, false
	}

	for _, op := range ins.Operands {
		switch op.Kind {
		case OperandDisp8, OperandDisp16, OperandDisp32:
			return ins.Address + 2 + uint32(op.Value), true

		case OperandEA:
			switch op.EA.Mode {
			case AbsoluteShort, AbsoluteLong:
				return op.EA.AbsoluteAddress()
			case PCDisplacement:
				return ins.Address + 2 + uint32(op.EA.Disp), true
			default:
			}

		default:
		}
	}
	return 0, false
}
