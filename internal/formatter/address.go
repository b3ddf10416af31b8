package formatter

import (
	"fmt"
	"strings"

	"github.com/retroenv/dis68k/internal/m68k"
)

func effectiveAddress(ea m68k.EffectiveAddress) string {
	switch ea.Mode {
	case m68k.DataDirect:
		return fmt.Sprintf("d%d", ea.Reg)
	case m68k.AddressDirect:
		return addressRegister(ea.Reg)
	case m68k.AddressIndirect:
		return "(" + addressRegister(ea.Reg) + ")"
	case m68k.PostIncrement:
		return "(" + addressRegister(ea.Reg) + ")+"
	case m68k.PreDecrement:
		return "-(" + addressRegister(ea.Reg) + ")"
	case m68k.Displacement:
		return fmt.Sprintf("(%d,%s)", ea.Disp, addressRegister(ea.Reg))
	case m68k.Indexed:
		return fmt.Sprintf("(%d,%s,%s)", ea.Disp, addressRegister(ea.Reg), indexRegister(ea.Index))
	case m68k.AbsoluteShort:
		return fmt.Sprintf("($%04X).w", uint16(ea.Value))
	case m68k.AbsoluteLong:
		return fmt.Sprintf("$%08X", ea.Value)
	case m68k.PCDisplacement:
		return fmt.Sprintf("(%d,pc)", ea.Disp)
	case m68k.PCIndexed:
		return fmt.Sprintf("(%d,pc,%s)", ea.Disp, indexRegister(ea.Index))
	case m68k.Immediate:
		return immediate(ea.Value)
	default:
		return extendedAddress(ea)
	}
}

func immediate(value uint32) string {
	switch {
	case value <= 0xFF:
		return fmt.Sprintf("#$%02X", value)
	case value <= 0xFFFF:
		return fmt.Sprintf("#$%04X", value)
	default:
		return fmt.Sprintf("#$%08X", value)
	}
}

// extendedAddress renders the full extension word forms. Suppressed base
// or index registers and null displacements are left out.
func extendedAddress(ea m68k.EffectiveAddress) string {
	var base string
	if !ea.BaseSuppressed {
		base = addressRegister(ea.Reg)
		if ea.Mode.PCRelative() {
			base = "pc"
		}
	}
	var index string
	if ea.Index != nil {
		index = indexRegister(ea.Index)
	}
	var bd, od string
	if ea.Disp != 0 {
		bd = fmt.Sprintf("%d", ea.Disp)
	}
	if ea.Outer != 0 {
		od = fmt.Sprintf("%d", ea.Outer)
	}

	if !ea.Mode.MemoryIndirect() {
		return "(" + joinParts("0", bd, base, index) + ")"
	}
	if ea.Mode == m68k.MemoryIndirectPre || ea.Mode == m68k.PCMemoryIndirectPre {
		return "(" + joinParts("", "["+joinParts("0", bd, base, index)+"]", od) + ")"
	}
	return "(" + joinParts("", "["+joinParts("0", bd, base)+"]", index, od) + ")"
}

// joinParts joins the non-empty parts with commas, returning empty if
// all parts are empty.
func joinParts(empty string, parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(part)
	}
	if b.Len() == 0 {
		return empty
	}
	return b.String()
}

func addressRegister(n uint8) string {
	if n == 7 {
		return "sp"
	}
	return fmt.Sprintf("a%d", n)
}

func indexRegister(index *m68k.IndexRegister) string {
	if index == nil {
		return "?"
	}

	var b strings.Builder
	if index.Address {
		b.WriteString(addressRegister(index.Reg))
	} else {
		fmt.Fprintf(&b, "d%d", index.Reg)
	}
	if index.Long {
		b.WriteString(".l")
	} else {
		b.WriteString(".w")
	}
	if index.Scale > 1 {
		fmt.Fprintf(&b, "*%d", index.Scale)
	}
	return b.String()
}

// registerList renders a MOVEM mask with bit 0 as d0 and bit 15 as a7 in
// the d0-d3/a0/a6 notation.
func registerList(mask uint16) string {
	var parts []string
	parts = registerRanges(parts, uint8(mask), "d")
	parts = registerRanges(parts, uint8(mask>>8), "a")
	return strings.Join(parts, "/")
}

func registerRanges(parts []string, mask uint8, prefix string) []string {
	for i := 0; i < 8; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		start := i
		for i < 7 && mask&(1<<(i+1)) != 0 {
			i++
		}
		if i > start {
			parts = append(parts, fmt.Sprintf("%s%d-%s%d", prefix, start, prefix, i))
		} else {
			parts = append(parts, fmt.Sprintf("%s%d", prefix, start))
		}
	}
	return parts
}
