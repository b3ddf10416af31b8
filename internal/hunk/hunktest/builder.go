// Package hunktest builds hunk executables for testing.
package hunktest

import (
	"encoding/binary"

	"github.com/retroenv/dis68k/internal/hunk"
)

// Builder assembles the blocks of a hunk executable.
type Builder struct {
	buf []byte
}

// New returns a builder that has written a header for hunks of the given
// allocation sizes in bytes.
func New(sizes ...uint32) *Builder {
	b := &Builder{}
	b.Long(hunk.IDHeader, 0, uint32(len(sizes)), 0, uint32(max(len(sizes)-1, 0)))
	for _, size := range sizes {
		b.Long(size / 4)
	}
	return b
}

// Empty returns a builder without header, for tests that write their
// own header words.
func Empty() *Builder {
	return &Builder{}
}

// Long appends raw longwords.
func (b *Builder) Long(values ...uint32) *Builder {
	for _, v := range values {
		b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	}
	return b
}

// Word appends raw words.
func (b *Builder) Word(values ...uint16) *Builder {
	for _, v := range values {
		b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	}
	return b
}

// Code appends a code block, data is padded to a longword multiple.
func (b *Builder) Code(data []byte) *Builder {
	return b.content(hunk.IDCode, data)
}

// Data appends a data block, data is padded to a longword multiple.
func (b *Builder) Data(data []byte) *Builder {
	return b.content(hunk.IDData, data)
}

func (b *Builder) content(id uint32, data []byte) *Builder {
	padded := pad(data)
	b.Long(id, uint32(len(padded)/4))
	b.buf = append(b.buf, padded...)
	return b
}

// BSS appends a bss block reserving size bytes.
func (b *Builder) BSS(size uint32) *Builder {
	return b.Long(hunk.IDBSS, size/4)
}

// Reloc32 appends a relocation block with a single target hunk.
func (b *Builder) Reloc32(target uint32, offsets ...uint32) *Builder {
	b.Long(hunk.IDReloc32, uint32(len(offsets)), target)
	b.Long(offsets...)
	return b.Long(0)
}

// Symbol appends a symbol block with a single symbol.
func (b *Builder) Symbol(name string, value uint32) *Builder {
	b.Long(hunk.IDSymbol)
	b.str(name)
	return b.Long(value, 0)
}

// Name appends a name block.
func (b *Builder) Name(name string) *Builder {
	b.Long(hunk.IDName)
	return b.str(name)
}

// End appends an end block.
func (b *Builder) End() *Builder {
	return b.Long(hunk.IDEnd)
}

// Bytes returns the assembled file.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) str(s string) *Builder {
	padded := pad([]byte(s))
	b.Long(uint32(len(padded) / 4))
	b.buf = append(b.buf, padded...)
	return b
}

func pad(data []byte) []byte {
	padded := make([]byte, (len(data)+3)/4*4)
	copy(padded, data)
	return padded
}
