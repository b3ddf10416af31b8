package hunkinfo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/hunk/hunktest"
	"github.com/retroenv/retrogolib/assert"
)

func testFile(t *testing.T) *hunk.File {
	t.Helper()

	data := hunktest.New(8, 8, 64).
		Name("main").
		Code([]byte{0x41, 0xF9, 0x00, 0x00, 0x00, 0x00, 0x4E, 0x75}).
		Reloc32(1, 2).
		Symbol("start", 0).
		End().
		Data([]byte("text\x00\x00\x00\x00")).
		End().
		BSS(64).
		End().
		Bytes()

	file, err := hunk.Parse(data)
	assert.NoError(t, err)
	return file
}

func TestWrite(t *testing.T) {
	file := testFile(t)

	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, Write(&buf, "test.exe", file, false))

		output := buf.String()
		assert.Contains(t, output, "Amiga Hunk Executable: test.exe\n")
		assert.Contains(t, output, "Hunks: 3 (first: 0, last: 2)\n")
		assert.Contains(t, output, "Symbols")
		assert.Contains(t, output, "HUNK_CODE")
		assert.Contains(t, output, "HUNK_DATA")
		assert.Contains(t, output, "HUNK_BSS")
		assert.Contains(t, output, "main")
		assert.Contains(t, output, "Hunk 0 relocations: 1 entries -> hunk_1 (1)\n")
		assert.False(t, strings.Contains(output, "Hunk 0 symbols:"))
	})

	t.Run("verbose lists symbols", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, Write(&buf, "test.exe", file, true))

		assert.Contains(t, buf.String(), "Hunk 0 symbols:\n  $00000000  start\n")
	})
}
