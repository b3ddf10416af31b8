package hunk

import (
	"errors"
	"fmt"
)

// Error classes of parse failures, usable with errors.Is.
var (
	ErrTooShort            = errors.New("file too short")
	ErrBadMagic            = errors.New("bad magic")
	ErrUnknownHunkType     = errors.New("unknown hunk type")
	ErrInvalidStringLength = errors.New("invalid string length")
	ErrHunkCountMismatch   = errors.New("hunk count mismatch")
	ErrInvalidValue        = errors.New("invalid value")
)

// ParseError describes why a file could not be parsed. The fields that
// are set depend on the error class returned by Unwrap.
type ParseError struct {
	Kind      error  // one of the Err class values
	Offset    int    // file offset of the problem
	Needed    int    // bytes needed, for ErrTooShort
	Available int    // bytes available, for ErrTooShort
	Value     uint32 // offending value
	Expected  int    // declared hunk count, for ErrHunkCountMismatch
	Found     int    // parsed hunk count, for ErrHunkCountMismatch
	Context   string // what was being read, for ErrInvalidValue
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrTooShort:
		return fmt.Sprintf("at offset 0x%X: need %d bytes, only %d available", e.Offset, e.Needed, e.Available)
	case ErrBadMagic:
		return fmt.Sprintf("not an Amiga executable: expected magic 0x%08X, found 0x%08X", IDHeader, e.Value)
	case ErrUnknownHunkType:
		return fmt.Sprintf("unknown hunk type 0x%08X at offset 0x%X", e.Value, e.Offset)
	case ErrInvalidStringLength:
		return fmt.Sprintf("invalid string length %d longwords at offset 0x%X", e.Value, e.Offset)
	case ErrHunkCountMismatch:
		return fmt.Sprintf("header declares %d hunks but found %d", e.Expected, e.Found)
	default:
		return fmt.Sprintf("invalid %s: 0x%08X", e.Context, e.Value)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func invalidValue(context string, value uint32, offset int) *ParseError {
	return &ParseError{Kind: ErrInvalidValue, Context: context, Value: value, Offset: offset}
}
