// Package options contains the program options.
package options

import (
	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/symbols"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `arg:"positional" usage:"hunk executable to disassemble"`
	Output string `flag:"o" usage:"output .s file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.exe)"`
}

// Flags contains behavior options.
type Flags struct {
	CPU      string `flag:"cpu" usage:"CPU variant: 68000, 68010, 68020, 68030, 68040, 68060" default:"68000"`
	Library  string `flag:"lib" usage:"library for vector offset names: exec, dos, intuition, graphics" default:"exec"`
	Base     string `flag:"base" usage:"load address of raw binary input in hex"`
	Binary   bool   `flag:"binary" usage:"treat input as raw binary without hunk structure"`
	HunkInfo bool   `flag:"hunkinfo" usage:"print the hunk structure instead of a listing"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Version  bool   `flag:"version" usage:"print version and exit"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoSymbols     bool `flag:"nosymbols" usage:"disable labels and library vector offset names"`
	NoHex         bool `flag:"nohex" usage:"omit the hex bytes column"`
	NoLineNumbers bool `flag:"nolinenumbers" usage:"omit line numbers"`
	Uppercase     bool `flag:"uppercase" usage:"upper case mnemonics"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Listing defines options to control the listing output.
type Listing struct {
	CPU     m68k.CPU // CPU variant to decode for
	Library string   // library whose vector offsets are resolved
	Base    uint32   // load address of code, applied to raw binary input

	Symbols     bool // labels, hunk symbols and vector offset comments
	Hex         bool // hex bytes column
	LineNumbers bool // line number prefix
	Uppercase   bool // upper case mnemonics
}

// NewListing returns a new options instance with default options.
func NewListing() Listing {
	return Listing{
		CPU:     m68k.M68000,
		Library: symbols.DefaultLibrary,

		Symbols:     true,
		Hex:         true,
		LineNumbers: true,
	}
}
