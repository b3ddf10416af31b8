package hunk_test

import (
	"errors"
	"testing"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/hunk/hunktest"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseMinimal(t *testing.T) {
	data := hunktest.New(4).
		Code([]byte{0x4E, 0x75, 0x00, 0x00}).
		End().
		Bytes()

	file, err := hunk.Parse(data)
	assert.NoError(t, err)
	assert.Len(t, file.Hunks, 1)
	assert.Equal(t, uint32(0), file.First)
	assert.Equal(t, uint32(0), file.Last)

	h := file.Hunks[0]
	assert.Equal(t, hunk.Code, h.Type)
	assert.Equal(t, []byte{0x4E, 0x75, 0x00, 0x00}, h.Data)
	assert.Equal(t, uint32(4), h.AllocSize)
	assert.Equal(t, "ANY", h.Memory.String())
	assert.True(t, h.Debug == nil)
}

func TestParseMultipleHunks(t *testing.T) {
	data := hunktest.New(8, 8, 64).
		Name("main").
		Code([]byte{0x41, 0xF9, 0x00, 0x00, 0x00, 0x00, 0x4E, 0x75}).
		Reloc32(1, 2).
		Symbol("start", 0).
		End().
		Data([]byte("text\x00\x00\x00\x00")).
		Name("strings").
		End().
		BSS(64).
		End().
		Bytes()

	file, err := hunk.Parse(data)
	assert.NoError(t, err)
	assert.Len(t, file.Hunks, 3)
	assert.Equal(t, uint32(2), file.Last)

	code := file.Hunks[0]
	assert.Equal(t, "main", code.Name)
	assert.Equal(t, 0, code.Index)
	assert.Len(t, code.Relocations, 1)
	assert.Equal(t, uint32(1), code.Relocations[0].Target)
	assert.Equal(t, []uint32{2}, code.Relocations[0].Offsets)
	assert.Equal(t, 1, code.RelocationCount())
	assert.Equal(t, map[uint32]uint32{2: 1}, code.RelocationSites())
	assert.Len(t, code.Symbols, 1)
	assert.Equal(t, hunk.Symbol{Name: "start", Value: 0}, code.Symbols[0])

	data1 := file.Hunks[1]
	assert.Equal(t, hunk.Data, data1.Type)
	assert.Equal(t, "strings", data1.Name)
	assert.Equal(t, 1, data1.Index)

	bss := file.Hunks[2]
	assert.Equal(t, hunk.BSS, bss.Type)
	assert.Equal(t, uint32(64), bss.AllocSize)
	assert.Len(t, bss.Data, 0)
}

func TestParseMemoryTypes(t *testing.T) {
	t.Run("header flags", func(t *testing.T) {
		data := hunktest.Empty().
			Long(hunk.IDHeader, 0, 2, 0, 1, 0x40000001, 0x80000001).
			Code([]byte{0x4E, 0x75, 0x4E, 0x71}).End().
			BSS(4).End().
			Bytes()

		file, err := hunk.Parse(data)
		assert.NoError(t, err)
		assert.Equal(t, hunk.MemoryFast, file.Hunks[0].Memory.Kind)
		assert.Equal(t, "FAST", file.Hunks[0].Memory.String())
		assert.Equal(t, "CHIP", file.Hunks[1].Memory.String())
	})

	t.Run("block flags override header", func(t *testing.T) {
		data := hunktest.New(4).
			Long(hunk.IDCode|0x40000000, 1, 0x4E754E71).
			End().
			Bytes()

		file, err := hunk.Parse(data)
		assert.NoError(t, err)
		assert.Equal(t, "FAST", file.Hunks[0].Memory.String())
	})

	t.Run("extended attributes", func(t *testing.T) {
		data := hunktest.Empty().
			Long(hunk.IDHeader, 0, 1, 0, 0, 0xC0000001, 0x00000001).
			Code([]byte{0x4E, 0x75, 0, 0}).End().
			Bytes()

		file, err := hunk.Parse(data)
		assert.NoError(t, err)
		assert.Equal(t, hunk.MemoryExtended, file.Hunks[0].Memory.Kind)
		assert.Equal(t, "EXT(0xC0000001)", file.Hunks[0].Memory.String())
		assert.Equal(t, uint32(4), file.Hunks[0].AllocSize)
	})
}

func TestParseSkippedBlocks(t *testing.T) {
	data := hunktest.New(4).
		Code([]byte{0x4E, 0x75, 0x00, 0x00}).
		// HUNK_RELOC32SHORT with one entry, padded to a longword
		Long(hunk.IDReloc32Short).Word(1, 0, 2, 0).
		// HUNK_EXT: definition with 1 longword name and a value, then a
		// reference with a count of 2
		Long(hunk.IDExt, 0x01000001, 0x41424300, 0x10).
		Long(0x81000001, 0x41424300, 2, 4, 8, 0).
		// HUNK_DREL32 with one entry
		Long(hunk.IDDRel32, 1, 0, 0, 0).
		// HUNK_DEBUG
		Long(hunk.IDDebug, 2, 0x11111111, 0x22222222).
		End().
		Bytes()

	file, err := hunk.Parse(data)
	assert.NoError(t, err)
	h := file.Hunks[0]
	assert.Len(t, h.Relocations, 1)
	assert.Equal(t, []uint32{2}, h.Relocations[0].Offsets)
	assert.Equal(t, []byte{0x11, 0x11, 0x11, 0x11, 0x22, 0x22, 0x22, 0x22}, h.Debug)
}

func TestParseStops(t *testing.T) {
	t.Run("overlay ends parsing", func(t *testing.T) {
		data := hunktest.New(4, 4).
			Code([]byte{0x4E, 0x75, 0, 0}).End().
			Data([]byte{1, 2, 3, 4}).
			Long(hunk.IDOverlay, 0xFFFFFFFF).
			Bytes()

		file, err := hunk.Parse(data)
		assert.NoError(t, err)
		assert.Len(t, file.Hunks, 2)
	})

	t.Run("data after last end block is ignored", func(t *testing.T) {
		data := hunktest.New(4).
			Code([]byte{0x4E, 0x75, 0, 0}).End().
			Long(0xDEADBEEF).
			Bytes()

		_, err := hunk.Parse(data)
		assert.NoError(t, err)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind error
		text string
	}{
		{
			name: "bad magic",
			data: []byte{0x7F, 'E', 'L', 'F'},
			kind: hunk.ErrBadMagic,
			text: "not an Amiga executable: expected magic 0x000003F3, found 0x7F454C46",
		},
		{
			name: "too short",
			data: []byte{0x00, 0x00},
			kind: hunk.ErrTooShort,
			text: "at offset 0x0: need 4 bytes, only 2 available",
		},
		{
			name: "truncated code",
			data: hunktest.New(8).Long(hunk.IDCode, 2, 0).Bytes(),
			kind: hunk.ErrTooShort,
		},
		{
			name: "unknown block",
			data: hunktest.New(4).Long(0x12345678).Bytes(),
			kind: hunk.ErrUnknownHunkType,
			text: "unknown hunk type 0x12345678 at offset 0x18",
		},
		{
			name: "hunk count mismatch",
			data: hunktest.New(4, 4).Code([]byte{0, 0, 0, 0}).End().Bytes(),
			kind: hunk.ErrHunkCountMismatch,
			text: "header declares 2 hunks but found 1",
		},
		{
			name: "object unit",
			data: hunktest.New(4).Long(hunk.IDUnit, 0).Bytes(),
			kind: hunk.ErrInvalidValue,
			text: "invalid object/library hunk in executable: 0x000003E7",
		},
		{
			name: "header in body",
			data: hunktest.New(4).Long(hunk.IDHeader).Bytes(),
			kind: hunk.ErrInvalidValue,
		},
		{
			name: "too many hunks",
			data: []byte{0, 0, 3, 0xF3, 0, 0, 0, 0, 0, 1, 0, 1},
			kind: hunk.ErrInvalidValue,
		},
		{
			name: "oversized name",
			data: hunktest.New(4).Long(hunk.IDName, 0x10001).Bytes(),
			kind: hunk.ErrInvalidStringLength,
			text: "invalid string length 65537 longwords at offset 0x1C",
		},
		{
			name: "relocation count exceeds data",
			data: hunktest.New(4).Code([]byte{0, 0, 0, 0}).Long(hunk.IDReloc32, 0x40000000, 0).Bytes(),
			kind: hunk.ErrTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hunk.Parse(tt.data)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))

			var parseErr *hunk.ParseError
			assert.True(t, errors.As(err, &parseErr))
			if tt.text != "" {
				assert.Equal(t, tt.text, err.Error())
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	raw := []byte{0x4E, 0x71, 0x4E, 0x75}
	file := hunk.FromRaw(raw, "boot")
	raw[0] = 0

	assert.Len(t, file.Hunks, 1)
	h := file.Hunks[0]
	assert.Equal(t, hunk.Code, h.Type)
	assert.Equal(t, "boot", h.Name)
	assert.Equal(t, uint32(4), h.AllocSize)
	assert.Equal(t, byte(0x4E), h.Data[0])
}

func TestIsExecutable(t *testing.T) {
	assert.True(t, hunk.IsExecutable([]byte{0, 0, 3, 0xF3, 0, 0}))
	assert.False(t, hunk.IsExecutable([]byte{0, 0, 3}))
	assert.False(t, hunk.IsExecutable([]byte{0x4E, 0x71, 0x4E, 0x75}))
}

func TestBlockName(t *testing.T) {
	assert.Equal(t, "HUNK_CODE", hunk.BlockName(hunk.IDCode))
	assert.Equal(t, "HUNK_CODE", hunk.BlockName(hunk.IDCode|0x40000000))
	assert.Equal(t, "HUNK_RELOC32SHORT", hunk.BlockName(hunk.IDReloc32Short))
	assert.Equal(t, "HUNK_0x123", hunk.BlockName(0x123))
	assert.Equal(t, "BSS", hunk.BSS.Section())
}
