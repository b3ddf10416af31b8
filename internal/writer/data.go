package writer

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/retroenv/dis68k/internal/hunk"
)

const minStringLength = 4

func (w *Writer) writeData(h *hunk.Hunk) error {
	var relocations map[uint32]uint32
	if w.options.Symbols {
		relocations = h.RelocationSites()
	}

	data := h.Data
	for offset := 0; offset < len(data); {
		address := w.options.Base + uint32(offset)

		if end, ok := stringEnd(data, offset); ok {
			value := fmt.Sprintf("\"%s\",0", data[offset:end])
			if err := w.writeLine(w.formatLine(address, "", w.directive("dc.b"), value)); err != nil {
				return fmt.Errorf("writing string: %w", err)
			}
			offset = end + 1
			// zero padding to an even address
			if offset%2 != 0 && offset < len(data) && data[offset] == 0 {
				offset++
			}
			continue
		}

		if offset%4 == 0 && offset+4 <= len(data) {
			if err := w.writeLong(data[offset:offset+4], address, relocations); err != nil {
				return err
			}
			offset += 4
			continue
		}

		count := byteRun(data, offset)
		if err := w.writeBytes(data[offset:offset+count], address); err != nil {
			return err
		}
		offset += count
	}
	return nil
}

// writeLong writes an aligned longword, annotating relocation sites with
// the target hunk.
func (w *Writer) writeLong(data []byte, address uint32, relocations map[uint32]uint32) error {
	value := binary.BigEndian.Uint32(data)
	line := w.formatLine(address, fmt.Sprintf("%08X", value), w.directive("dc.l"), fmt.Sprintf("$%08X", value))

	if target, ok := relocations[address-w.options.Base]; ok {
		line += fmt.Sprintf("  ; -> hunk_%d", target)
	}

	if err := w.writeLine(line); err != nil {
		return fmt.Errorf("writing data long: %w", err)
	}
	return nil
}

// writeBytes writes bytes bundled on a single line.
func (w *Writer) writeBytes(data []byte, address uint32) error {
	values := make([]string, len(data))
	for i, b := range data {
		values[i] = fmt.Sprintf("$%02X", b)
	}

	line := w.formatLine(address, "", w.directive("dc.b"), strings.Join(values, ","))
	if err := w.writeLine(line); err != nil {
		return fmt.Errorf("writing data bytes: %w", err)
	}
	return nil
}

func (w *Writer) writeBSS(h *hunk.Hunk) error {
	line := w.formatLine(w.options.Base, "", w.directive("ds.b"), fmt.Sprintf("%d", h.AllocSize))
	if err := w.writeLine(line); err != nil {
		return fmt.Errorf("writing bss: %w", err)
	}
	return nil
}

// byteRun returns the number of bytes to bundle starting at offset: up to
// the next longword boundary, string start or the line limit.
func byteRun(data []byte, offset int) int {
	count := 1
	for offset+count < len(data) && count < dataBytesPerLine {
		next := offset + count
		if next%4 == 0 {
			break
		}
		if _, ok := stringEnd(data, next); ok {
			break
		}
		count++
	}
	return count
}

// stringEnd returns the offset of the terminating NUL of a printable
// string of at least minStringLength characters starting at offset.
func stringEnd(data []byte, offset int) (int, bool) {
	end := offset
	for end < len(data) && data[end] != 0 {
		if !printable(data[end]) {
			return 0, false
		}
		end++
	}
	if end-offset < minStringLength || end >= len(data) {
		return 0, false
	}
	return end, true
}

// printable returns whether the byte can be written inside a quoted
// string directive.
func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7E && b != '"'
}
