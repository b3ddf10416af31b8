package m68k

import (
	"errors"
	"fmt"
)

// Error classes of decoding failures, usable with errors.Is.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrInvalidEA     = errors.New("invalid effective address")
)

// EOFError is returned when an encoding needs more bytes than the buffer
// holds.
type EOFError struct {
	Address uint32 // start address of the instruction
	Needed  int    // missing byte count
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("$%08X: %s, %d more bytes needed", e.Address, ErrUnexpectedEOF, e.Needed)
}

func (e *EOFError) Unwrap() error {
	return ErrUnexpectedEOF
}

// UnknownOpcodeError reports an opcode word without instruction. The
// decoder itself substitutes a dc.w placeholder instead, the error exists
// for callers that want strict rejection via DecodeStrict.
type UnknownOpcodeError struct {
	Address uint32
	Opcode  uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("$%08X: %s $%04X", e.Address, ErrUnknownOpcode, e.Opcode)
}

func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// InvalidEAError reports an addressing mode field combination without
// meaning, or a reserved full extension word.
type InvalidEAError struct {
	Address uint32
	Mode    uint8
	Reg     uint8
}

func (e *InvalidEAError) Error() string {
	return fmt.Sprintf("$%08X: %s mode %d register %d", e.Address, ErrInvalidEA, e.Mode, e.Reg)
}

func (e *InvalidEAError) Unwrap() error {
	return ErrInvalidEA
}
