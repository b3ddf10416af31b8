// Package writer implements the disassembly listing output.
package writer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/dis68k/internal/formatter"
	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/dis68k/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

const (
	hexColumnWidth      = 20
	mnemonicColumnWidth = 8
	dataBytesPerLine    = 16
)

// Writer writes the listing of a hunk file.
type Writer struct {
	logger    *log.Logger
	file      *hunk.File
	options   options.Listing
	writer    io.Writer
	formatter *formatter.Formatter
	lvo       *symbols.LVO // nil if symbols are disabled

	lineNumber int
}

// New creates a new writer. An error is returned for an unknown library.
func New(logger *log.Logger, file *hunk.File, writer io.Writer, opts options.Listing) (*Writer, error) {
	w := &Writer{
		logger:    logger,
		file:      file,
		options:   opts,
		writer:    writer,
		formatter: formatter.New(formatter.Options{Uppercase: opts.Uppercase}),
	}

	if opts.Symbols {
		lvo, err := symbols.NewLVO(opts.Library)
		if err != nil {
			return nil, fmt.Errorf("creating library vector resolver: %w", err)
		}
		w.lvo = lvo
	}
	return w, nil
}

// Write writes the listing header and all hunks. The context is checked
// for cancellation before each hunk.
func (w *Writer) Write(ctx context.Context) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	for _, h := range w.file.Hunks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing hunk %d: %w", h.Index, err)
		}
		if err := w.writeHunk(h); err != nil {
			return fmt.Errorf("writing hunk %d: %w", h.Index, err)
		}
	}
	return nil
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lineNumber
}

func (w *Writer) writeHeader() error {
	if err := w.writeLine("; Amiga Hunk Executable Disassembly"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.writeLine(fmt.Sprintf("; Hunks: %d", len(w.file.Hunks))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return w.writeLine("")
}

func (w *Writer) writeHunk(h *hunk.Hunk) error {
	if err := w.writeSectionHeader(h); err != nil {
		return err
	}

	switch h.Type {
	case hunk.Code:
		return w.writeCode(h)
	case hunk.Data:
		return w.writeData(h)
	case hunk.BSS:
		return w.writeBSS(h)
	default:
		return nil
	}
}

func (w *Writer) writeSectionHeader(h *hunk.Hunk) error {
	name := h.Name
	if name == "" {
		name = fmt.Sprintf("hunk_%d", h.Index)
	}

	lines := []string{
		"",
		fmt.Sprintf("; ---- SECTION %s, %s (hunk %d, %d bytes, mem=%s) ----",
			name, h.Type.Section(), h.Index, h.AllocSize, h.Memory),
	}
	if len(h.Symbols) > 0 {
		lines = append(lines, "; Symbols:")
		for _, sym := range h.Symbols {
			lines = append(lines, fmt.Sprintf(";   $%08X  %s", sym.Value, sym.Name))
		}
	}
	lines = append(lines, "")

	for _, line := range lines {
		if err := w.writeLine(line); err != nil {
			return fmt.Errorf("writing section header: %w", err)
		}
	}
	return nil
}

// writeLine writes a single listing line with the optional line number
// prefix. Trailing padding is removed.
func (w *Writer) writeLine(text string) error {
	w.lineNumber++
	if w.options.LineNumbers {
		text = fmt.Sprintf("%5d  %s", w.lineNumber, text)
	}

	if _, err := fmt.Fprintln(w.writer, strings.TrimRight(text, " ")); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// formatLine renders the address, hex and instruction columns.
func (w *Writer) formatLine(address uint32, hex, mnemonic, operands string) string {
	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("%08X", address))
	if w.options.Hex {
		parts = append(parts, fmt.Sprintf("%-*s", hexColumnWidth, hex))
	}
	if operands == "" {
		parts = append(parts, mnemonic)
	} else {
		parts = append(parts, fmt.Sprintf("%-*s %s", mnemonicColumnWidth, mnemonic, operands))
	}
	return strings.Join(parts, "  ")
}

// directive returns a data directive in the configured case.
func (w *Writer) directive(name string) string {
	if w.options.Uppercase {
		return strings.ToUpper(name)
	}
	return name
}
