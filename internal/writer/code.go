package writer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/m68k"
	"github.com/retroenv/dis68k/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// codeSymbols holds the resolvers of a single code hunk.
type codeSymbols struct {
	hunkSymbols *symbols.HunkSymbols
	labels      *symbols.AutoLabels
	resolver    symbols.Resolver
}

// newCodeSymbols combines hunk symbols, labels for branch targets and the
// library vector offsets, in that priority.
func (w *Writer) newCodeSymbols(h *hunk.Hunk) *codeSymbols {
	base := w.options.Base
	targets := m68k.CollectBranchTargets(h.Data, base, w.options.CPU)

	cs := &codeSymbols{
		hunkSymbols: symbols.NewHunkSymbols(h.Symbols, base),
		labels:      symbols.NewAutoLabels(targets),
	}
	cs.resolver = symbols.NewComposite(cs.hunkSymbols, cs.labels, w.lvo)
	return cs
}

// label returns the label to emit at address without counting it as a
// reference.
func (cs *codeSymbols) label(address uint32) (string, bool) {
	if name, ok := cs.hunkSymbols.ResolveAddress(address); ok {
		return name, true
	}
	return cs.labels.Label(address)
}

func (w *Writer) writeCode(h *hunk.Hunk) error {
	var cs *codeSymbols
	var resolver symbols.Resolver
	if w.options.Symbols {
		cs = w.newCodeSymbols(h)
		resolver = cs.resolver
	}

	base := w.options.Base
	steps := m68k.DecodeAll(h.Data, base, w.options.CPU)
	for _, step := range steps {
		address := base + uint32(step.Offset)

		if cs != nil {
			if name, ok := cs.label(address); ok {
				if err := w.writeLine(name + ":"); err != nil {
					return fmt.Errorf("writing label: %w", err)
				}
			}
		}

		if step.Err != nil {
			w.logger.Debug("Decoding failed",
				log.Hex("address", address),
				log.Err(step.Err))
			if err := w.writeUndecodable(h.Data[step.Offset:step.Offset+step.Length], address, step.Err); err != nil {
				return err
			}
			continue
		}

		if err := w.writeInstruction(step.Instruction, resolver); err != nil {
			return err
		}
	}

	if cs != nil {
		w.logger.Debug("Code hunk written",
			log.Int("hunk", h.Index),
			log.Int("instructions", len(steps)),
			log.Int("labels", cs.labels.Len()),
			log.Int("referenced", cs.labels.Referenced()))
	}
	return nil
}

func (w *Writer) writeInstruction(ins m68k.Instruction, resolver symbols.Resolver) error {
	out := w.formatter.Format(ins, resolver)
	line := w.formatLine(ins.Address, out.Hex, out.Mnemonic, out.Operands)

	if resolver != nil {
		if name, ok := libraryCall(ins, resolver); ok {
			line += "  ; " + name
		}
	}

	if err := w.writeLine(line); err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// libraryCall resolves the function name of a JSR or JMP through a
// displacement from a6, the library base register by convention.
func libraryCall(ins m68k.Instruction, resolver symbols.Resolver) (string, bool) {
	if ins.Mnemonic != m68k.Jsr && ins.Mnemonic != m68k.Jmp {
		return "", false
	}

	for _, op := range ins.Operands {
		if op.Kind == m68k.OperandEA && op.EA.Mode == m68k.Displacement && op.EA.Reg == 6 {
			return resolver.ResolveLVO(int16(op.EA.Disp))
		}
	}
	return "", false
}

// writeUndecodable writes bytes that do not form an instruction. A
// truncated encoding is written byte by byte, others as a single word.
func (w *Writer) writeUndecodable(data []byte, address uint32, decodeErr error) error {
	if len(data) == 2 && !errors.Is(decodeErr, m68k.ErrUnexpectedEOF) {
		word := binary.BigEndian.Uint16(data)
		line := w.formatLine(address, fmt.Sprintf("%04X", word), w.directive("dc.w"), fmt.Sprintf("$%04X", word))
		if err := w.writeLine(line); err != nil {
			return fmt.Errorf("writing code word: %w", err)
		}
		return nil
	}

	for i, b := range data {
		line := w.formatLine(address+uint32(i), fmt.Sprintf("%02X", b), w.directive("dc.b"), fmt.Sprintf("$%02X", b))
		if err := w.writeLine(line); err != nil {
			return fmt.Errorf("writing code byte: %w", err)
		}
	}
	return nil
}
