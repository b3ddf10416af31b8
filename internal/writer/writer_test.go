package writer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testCode = []byte{
	0x2C, 0x78, 0x00, 0x04, // movea.l ($0004).w,a6
	0x4E, 0xAE, 0xFD, 0xD8, // jsr (-552,a6)
	0x60, 0x00, 0xFF, 0xF6, // bra 0
	0x4E, 0x75, // rts
	0xFF, 0xFF, // unknown
	0x4E, // truncated
}

func codeFile(syms ...hunk.Symbol) *hunk.File {
	return &hunk.File{
		Hunks: []*hunk.Hunk{{
			Index:     0,
			Type:      hunk.Code,
			AllocSize: uint32(len(testCode)),
			Data:      testCode,
			Symbols:   syms,
		}},
	}
}

func listingOptions() options.Listing {
	opts := options.NewListing()
	opts.Hex = false
	opts.LineNumbers = false
	return opts
}

func writeListing(t *testing.T, file *hunk.File, opts options.Listing) []string {
	t.Helper()

	var buf bytes.Buffer
	w, err := New(log.NewTestLogger(t), file, &buf, opts)
	assert.NoError(t, err)
	assert.NoError(t, w.Write(context.Background()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), w.Lines())
	return lines
}

func TestWriteCode(t *testing.T) {
	lines := writeListing(t, codeFile(), listingOptions())

	expected := []string{
		"; Amiga Hunk Executable Disassembly",
		"; Hunks: 1",
		"",
		"",
		"; ---- SECTION hunk_0, CODE (hunk 0, 17 bytes, mem=ANY) ----",
		"",
		"loc_0000:",
		"00000000  movea.l  ($0004).w,a6",
		"00000004  jsr      (-552,a6)  ; _LVOOpenLibrary",
		"00000008  bra      loc_0000",
		"0000000C  rts",
		"0000000E  dc.w     $FFFF",
		"00000010  dc.b     $4E",
	}
	assert.Equal(t, expected, lines)
}

func TestWriteCodeOptions(t *testing.T) {
	t.Run("hunk symbols take priority", func(t *testing.T) {
		lines := writeListing(t, codeFile(hunk.Symbol{Name: "start", Value: 0}), listingOptions())

		assert.Equal(t, "; Symbols:", lines[5])
		assert.Equal(t, ";   $00000000  start", lines[6])
		assert.Equal(t, "start:", lines[8])
		assert.Equal(t, "00000008  bra      start", lines[11])
	})

	t.Run("no symbols", func(t *testing.T) {
		opts := listingOptions()
		opts.Symbols = false
		lines := writeListing(t, codeFile(), opts)

		assert.Equal(t, "00000000  movea.l  ($0004).w,a6", lines[6])
		assert.Equal(t, "00000004  jsr      (-552,a6)", lines[7])
		assert.Equal(t, "00000008  bra      $00000000", lines[8])
	})

	t.Run("library selection", func(t *testing.T) {
		opts := listingOptions()
		opts.Library = "dos"
		lines := writeListing(t, codeFile(), opts)

		assert.Equal(t, "00000004  jsr      (-552,a6)", lines[8])
	})

	t.Run("hex column and line numbers", func(t *testing.T) {
		opts := options.NewListing()
		lines := writeListing(t, codeFile(), opts)

		assert.Equal(t, "    1  ; Amiga Hunk Executable Disassembly", lines[0])
		assert.Equal(t, "    3", lines[2])
		assert.Equal(t, "    8  00000000  2C780004              movea.l  ($0004).w,a6", lines[7])
		assert.Equal(t, "   11  0000000C  4E75                  rts", lines[10])
	})

	t.Run("uppercase", func(t *testing.T) {
		opts := listingOptions()
		opts.Uppercase = true
		lines := writeListing(t, codeFile(), opts)

		assert.Equal(t, "00000004  JSR      (-552,a6)  ; _LVOOpenLibrary", lines[8])
		assert.Equal(t, "0000000E  DC.W     $FFFF", lines[11])
		assert.Equal(t, "00000010  DC.B     $4E", lines[12])
	})

	t.Run("base address", func(t *testing.T) {
		opts := listingOptions()
		opts.Base = 0x10000
		lines := writeListing(t, codeFile(), opts)

		assert.Equal(t, "loc_10000:", lines[6])
		assert.Equal(t, "00010008  bra      loc_10000", lines[9])
	})
}

func TestWriteData(t *testing.T) {
	file := &hunk.File{
		Hunks: []*hunk.Hunk{
			{
				Index:     0,
				Type:      hunk.Data,
				Name:      "strings",
				AllocSize: 16,
				Data: []byte{
					'H', 'e', 'l', 'l', 'o', '!', '!', 0,
					0x00, 0x00, 0x00, 0x10,
					0x01, 0x02,
				},
				Relocations: []hunk.Relocation{{Target: 1, Offsets: []uint32{8}}},
			},
			{
				Index:     1,
				Type:      hunk.BSS,
				AllocSize: 64,
				Memory:    hunk.MemoryType{Kind: hunk.MemoryChip},
			},
		},
	}

	lines := writeListing(t, file, listingOptions())
	expected := []string{
		"; Amiga Hunk Executable Disassembly",
		"; Hunks: 2",
		"",
		"",
		"; ---- SECTION strings, DATA (hunk 0, 16 bytes, mem=ANY) ----",
		"",
		`00000000  dc.b     "Hello!!",0`,
		"00000008  dc.l     $00000010  ; -> hunk_1",
		"0000000C  dc.b     $01,$02",
		"",
		"; ---- SECTION hunk_1, BSS (hunk 1, 64 bytes, mem=CHIP) ----",
		"",
		"00000000  ds.b     64",
	}
	assert.Equal(t, expected, lines)
}

func TestStringEnd(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		end   int
		found bool
	}{
		{"terminated", []byte("abcd\x00"), 4, true},
		{"too short", []byte("abc\x00"), 0, false},
		{"unterminated", []byte("abcdef"), 0, false},
		{"control character", []byte("ab\ncd\x00"), 0, false},
		{"quote", []byte("ab\"cd\x00"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := stringEnd(tt.data, 0)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.end, end)
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrors(t *testing.T) {
	t.Run("write error is wrapped", func(t *testing.T) {
		w, err := New(log.NewTestLogger(t), codeFile(), failingWriter{}, listingOptions())
		assert.NoError(t, err)

		err = w.Write(context.Background())
		assert.True(t, errors.Is(err, errWrite))
		assert.ErrorContains(t, err, "writing header")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		w, err := New(log.NewTestLogger(t), codeFile(), &buf, listingOptions())
		assert.NoError(t, err)
		assert.True(t, errors.Is(w.Write(ctx), context.Canceled))
	})

	t.Run("unknown library", func(t *testing.T) {
		opts := listingOptions()
		opts.Library = "unknown"
		_, err := New(log.NewTestLogger(t), codeFile(), &bytes.Buffer{}, opts)
		assert.Error(t, err)
	})
}
