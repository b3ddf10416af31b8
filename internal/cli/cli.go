// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/dis68k/internal/symbols"
)

// ParseFlags parses command line flags and returns program and listing options
func ParseFlags() (options.Program, options.Listing, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if errors.Is(err, flag.ErrHelp) {
		return opts, options.Listing{}, &UsageError{flags: flags}
	}
	if err != nil {
		return opts, options.Listing{}, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, options.Listing{}, nil
	}
	if len(args) == 0 && opts.Batch == "" {
		return opts, options.Listing{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Listing{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	listing, err := createListingOptions(opts)
	if err != nil {
		return opts, options.Listing{}, &UsageError{flags: flags, msg: err.Error()}
	}
	return opts, listing, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message if set and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: dis68k [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// createListingOptions creates listing options based on program options
func createListingOptions(opts options.Program) (options.Listing, error) {
	listing := options.NewListing()

	cpu, err := m68k.ParseCPU(opts.CPU)
	if err != nil {
		return listing, fmt.Errorf("unsupported CPU: %w. Valid options: %s",
			err, strings.Join(m68k.CPUNames(), ", "))
	}
	listing.CPU = cpu

	lvo, err := symbols.NewLVO(opts.Library)
	if err != nil {
		return listing, fmt.Errorf("unsupported library: %w. Valid options: %s",
			err, strings.Join(symbols.LibraryNames(), ", "))
	}
	listing.Library = lvo.Library()

	if opts.Base != "" {
		base, err := parseAddress(opts.Base)
		if err != nil {
			return listing, err
		}
		listing.Base = base
	}

	listing.Symbols = !opts.NoSymbols
	listing.Hex = !opts.NoHex
	listing.LineNumbers = !opts.NoLineNumbers
	listing.Uppercase = opts.Uppercase
	return listing, nil
}

// parseAddress parses a hex address with optional "$" or "0x" prefix.
func parseAddress(s string) (uint32, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	hex = strings.TrimPrefix(hex, "$")
	hex = strings.TrimPrefix(hex, "0x")

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid base address '%s': %w", s, err)
	}
	if value%2 != 0 {
		return 0, fmt.Errorf("invalid base address '%s': must be even", s)
	}
	return uint32(value), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .s file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .s file naming, for example *.exe")
	flags.StringVar(&opts.CPU, "cpu", m68k.M68000.String(), "CPU variant to decode for ("+strings.Join(m68k.CPUNames(), "/")+")")
	flags.StringVar(&opts.Library, "lib", symbols.DefaultLibrary, "library to name vector offsets of JSR/JMP through a6 ("+strings.Join(symbols.LibraryNames(), "/")+")")
	flags.StringVar(&opts.Base, "base", "", "load address in hex of raw binary input")
	flags.BoolVar(&opts.Binary, "binary", false, "read input file as raw binary code without hunk structure")
	flags.BoolVar(&opts.HunkInfo, "hunkinfo", false, "print the hunk structure instead of a listing")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version information and exit")

	flags.BoolVar(&opts.NoSymbols, "nosymbols", false, "do not generate labels and library vector offset names")
	flags.BoolVar(&opts.NoHex, "nohex", false, "do not output opcode bytes as hex values")
	flags.BoolVar(&opts.NoLineNumbers, "nolinenumbers", false, "do not output line numbers")
	flags.BoolVar(&opts.Uppercase, "uppercase", false, "output mnemonics in upper case")
}
