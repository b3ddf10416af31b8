package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, options.Listing, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"dis68k"}, args...)

	return ParseFlags()
}

func TestParseFlags_ListingOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Listing
	}{
		{
			name: "default flags",
			args: []string{"test.exe"},
			want: options.NewListing(),
		},
		{
			name: "output flags",
			args: []string{"-nosymbols", "-nohex", "-nolinenumbers", "-uppercase", "test.exe"},
			want: options.Listing{CPU: m68k.M68000, Library: "exec", Uppercase: true},
		},
		{
			name: "cpu and library",
			args: []string{"-cpu", "mc68020", "-lib", "dos.library", "test.exe"},
			want: options.Listing{CPU: m68k.M68020, Library: "dos", Symbols: true, Hex: true, LineNumbers: true},
		},
		{
			name: "cpu prefix and base address",
			args: []string{"-cpu", "6806", "-binary", "-base", "$F80000", "kick.rom"},
			want: options.Listing{CPU: m68k.M68060, Library: "exec", Base: 0xF80000, Symbols: true, Hex: true, LineNumbers: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_ProgramOptions(t *testing.T) {
	opts, _, err := parseArgs(t, "-o", "out.s", "-hunkinfo", "-debug", "-q", "-binary", "in.exe")
	assert.NoError(t, err)
	assert.Equal(t, "in.exe", opts.Input)
	assert.Equal(t, "out.s", opts.Output)
	assert.True(t, opts.HunkInfo)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Quiet)
	assert.True(t, opts.Binary)

	opts, _, err = parseArgs(t, "-batch", "*.exe")
	assert.NoError(t, err)
	assert.Equal(t, "*.exe", opts.Batch)
	assert.Equal(t, "", opts.Input)

	opts, _, err = parseArgs(t, "-version")
	assert.NoError(t, err)
	assert.True(t, opts.Version)
}

func TestParseFlags_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name: "no input file",
			args: []string{},
		},
		{
			name: "help",
			args: []string{"-h"},
		},
		{
			name:    "unknown flag",
			args:    []string{"-verify", "test.exe"},
			message: "flag provided but not defined: -verify",
		},
		{
			name:    "flag after file",
			args:    []string{"test.exe", "-q"},
			message: "Potential argument -q found after file to disassemble",
		},
		{
			name:    "unknown cpu",
			args:    []string{"-cpu", "68008", "test.exe"},
			message: "unsupported CPU",
		},
		{
			name:    "ambiguous cpu prefix",
			args:    []string{"-cpu", "680", "test.exe"},
			message: "unsupported CPU",
		},
		{
			name:    "unknown library",
			args:    []string{"-lib", "asl", "test.exe"},
			message: "unsupported library",
		},
		{
			name:    "invalid base",
			args:    []string{"-base", "xyz", "test.exe"},
			message: "invalid base address 'xyz'",
		},
		{
			name:    "odd base",
			args:    []string{"-base", "0x1001", "test.exe"},
			message: "must be even",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			if tt.message != "" {
				assert.ErrorContains(t, err, tt.message)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected uint32
	}{
		{"1000", 0x1000},
		{"$C00000", 0xC00000},
		{"0xFC0000", 0xFC0000},
		{"0XF80000", 0xF80000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAddress(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
