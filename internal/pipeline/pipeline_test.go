package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/hunk/hunktest"
	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// testExecutable is a code hunk calling OpenLibrary and a data hunk.
func testExecutable() []byte {
	return hunktest.New(12, 4).
		Code([]byte{
			0x2C, 0x78, 0x00, 0x04, // movea.l ($0004).w,a6
			0x4E, 0xAE, 0xFD, 0xD8, // jsr (-552,a6)
			0x4E, 0x75, 0x4E, 0x71, // rts, nop
		}).
		End().
		Data([]byte{0x00, 0x00, 0x00, 0x2A}).
		End().
		Bytes()
}

func listingOptions() options.Listing {
	opts := options.NewListing()
	opts.Hex = false
	opts.LineNumbers = false
	return opts
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)
	exe := createTempFile(t, "test.exe", testExecutable())

	tests := []struct {
		name     string
		opts     options.Program
		listing  func() options.Listing
		contains []string
	}{
		{
			name:    "listing",
			opts:    options.Program{Parameters: options.Parameters{Input: exe}},
			listing: listingOptions,
			contains: []string{
				"; Hunks: 2\n",
				"; ---- SECTION hunk_0, CODE (hunk 0, 12 bytes, mem=ANY) ----\n",
				"00000004  jsr      (-552,a6)  ; _LVOOpenLibrary\n",
				"; ---- SECTION hunk_1, DATA (hunk 1, 4 bytes, mem=ANY) ----\n",
				"00000000  dc.l     $0000002A\n",
			},
		},
		{
			name:    "hunk info",
			opts:    options.Program{Parameters: options.Parameters{Input: exe}, Flags: options.Flags{HunkInfo: true}},
			listing: listingOptions,
			contains: []string{
				"Amiga Hunk Executable: " + exe + "\n",
				"Hunks: 2 (first: 0, last: 1)\n",
				"HUNK_CODE",
			},
		},
		{
			name: "base address ignored for hunk executables",
			opts: options.Program{Parameters: options.Parameters{Input: exe}},
			listing: func() options.Listing {
				opts := listingOptions()
				opts.Base = 0x10000
				return opts
			},
			contains: []string{
				"00000000  movea.l  ($0004).w,a6\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := p.Execute(context.Background(), tt.opts, tt.listing(), &buf)
			assert.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestExecuteRawBinary(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)
	raw := createTempFile(t, "boot.bin", []byte{0x4E, 0x71, 0x60, 0xFC})

	listing := listingOptions()
	listing.Base = 0x20000

	var buf bytes.Buffer
	opts := options.Program{Parameters: options.Parameters{Input: raw}}
	assert.NoError(t, p.Execute(context.Background(), opts, listing, &buf))

	output := buf.String()
	assert.Contains(t, output, "; ---- SECTION boot.bin, CODE (hunk 0, 4 bytes, mem=ANY) ----\n")
	assert.Contains(t, output, "loc_20000:\n00020000  nop\n00020002  bra      loc_20000\n")
}

func TestExecuteErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("missing file", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: "/nonexistent/file.exe"}}
		err := p.Execute(context.Background(), opts, listingOptions(), &bytes.Buffer{})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("not an executable", func(t *testing.T) {
		bad := createTempFile(t, "bad.exe", []byte{0x7F, 'E', 'L', 'F', 0, 0, 0, 0})
		opts := options.Program{Parameters: options.Parameters{Input: bad}}
		err := p.Execute(context.Background(), opts, listingOptions(), &bytes.Buffer{})
		assert.True(t, errors.Is(err, hunk.ErrBadMagic))
		assert.ErrorContains(t, err, "not an Amiga executable")
	})

	t.Run("cancelled context", func(t *testing.T) {
		exe := createTempFile(t, "test.exe", testExecutable())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := options.Program{Parameters: options.Parameters{Input: exe}}
		err := p.Execute(ctx, opts, listingOptions(), &bytes.Buffer{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecuteWithFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)
	file := hunk.FromRaw([]byte{0x42, 0xC0}, "ccr")

	tests := []struct {
		name     string
		cpu      m68k.CPU
		expected string
	}{
		{"68000 has no move from ccr", m68k.M68000, "dc.w     $42C0"},
		{"68010 decodes move from ccr", m68k.M68010, "move.w   ccr,d0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := listingOptions()
			listing.CPU = tt.cpu

			var buf bytes.Buffer
			assert.NoError(t, p.ExecuteWithFile(context.Background(), file, listing, &buf))
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Contains(t, lines[len(lines)-1], tt.expected)
		})
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
