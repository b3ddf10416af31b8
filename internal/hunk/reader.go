package hunk

import (
	"bytes"
	"encoding/binary"
	"math"
)

// reader reads big endian values from a file buffer.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return max(len(r.data)-r.pos, 0)
}

func (r *reader) eof() bool {
	return r.pos >= len(r.data)
}

func (r *reader) tooShort(n int) error {
	return &ParseError{Kind: ErrTooShort, Offset: r.pos, Needed: n, Available: r.remaining()}
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, r.tooShort(n)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) skip(n int) error {
	_, err := r.bytes(n)
	return err
}

func (r *reader) long() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) word() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// longs returns the next count longwords as bytes. The count is checked
// against the remaining data before any size arithmetic on int.
func (r *reader) longs(count uint32) ([]byte, error) {
	if uint64(count)*4 > uint64(r.remaining()) {
		return nil, r.tooShort(int(min(uint64(count)*4, math.MaxInt32)))
	}
	return r.bytes(int(count) * 4)
}

func (r *reader) skipLongs(count uint32) error {
	_, err := r.longs(count)
	return err
}

func (r *reader) alignLong() {
	if rem := r.pos % 4; rem != 0 {
		r.pos = min(r.pos+4-rem, len(r.data))
	}
}

// name reads a string prefixed by its length in longwords. The string
// ends at the first NUL byte.
func (r *reader) name(longs uint32) (string, error) {
	if longs > maxStringLongs {
		return "", &ParseError{Kind: ErrInvalidStringLength, Value: longs, Offset: r.pos - 4}
	}
	b, err := r.longs(longs)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}
