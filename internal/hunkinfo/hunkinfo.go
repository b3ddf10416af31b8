// Package hunkinfo prints the block structure of hunk executables.
package hunkinfo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/retroenv/dis68k/internal/hunk"
)

var columns = []string{"Hunk", "Type", "Memory", "Alloc", "Data", "Name", "Relocs", "Symbols", "Debug"}

// Write writes the hunk summary of file. With verbose set all symbols
// are listed.
func Write(w io.Writer, name string, file *hunk.File, verbose bool) error {
	if _, err := fmt.Fprintf(w, "Amiga Hunk Executable: %s\n", name); err != nil {
		return fmt.Errorf("writing file name: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Hunks: %d (first: %d, last: %d)\n\n", len(file.Hunks), file.First, file.Last); err != nil {
		return fmt.Errorf("writing hunk count: %w", err)
	}

	writeTable(w, file)

	for _, h := range file.Hunks {
		if err := writeDetails(w, h, verbose); err != nil {
			return fmt.Errorf("writing hunk %d details: %w", h.Index, err)
		}
	}
	return nil
}

func writeTable(w io.Writer, file *hunk.File) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, h := range file.Hunks {
		debug := "-"
		if h.Debug != nil {
			debug = fmt.Sprintf("%d bytes", len(h.Debug))
		}
		table.Append([]string{
			strconv.Itoa(h.Index),
			h.Type.String(),
			h.Memory.String(),
			strconv.FormatUint(uint64(h.AllocSize), 10),
			strconv.Itoa(len(h.Data)),
			h.Name,
			strconv.Itoa(h.RelocationCount()),
			strconv.Itoa(len(h.Symbols)),
			debug,
		})
	}
	table.Render()
}

func writeDetails(w io.Writer, h *hunk.Hunk, verbose bool) error {
	if len(h.Relocations) > 0 {
		targets := make([]string, 0, len(h.Relocations))
		for _, reloc := range h.Relocations {
			targets = append(targets, fmt.Sprintf("hunk_%d (%d)", reloc.Target, len(reloc.Offsets)))
		}
		if _, err := fmt.Fprintf(w, "\nHunk %d relocations: %d entries -> %s\n",
			h.Index, h.RelocationCount(), strings.Join(targets, ", ")); err != nil {
			return fmt.Errorf("writing relocations: %w", err)
		}
	}

	if !verbose || len(h.Symbols) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nHunk %d symbols:\n", h.Index); err != nil {
		return fmt.Errorf("writing symbols: %w", err)
	}
	for _, sym := range h.Symbols {
		if _, err := fmt.Fprintf(w, "  $%08X  %s\n", sym.Value, sym.Name); err != nil {
			return fmt.Errorf("writing symbol: %w", err)
		}
	}
	return nil
}
