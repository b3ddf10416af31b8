package m68k

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// CPU is a member of the 68000 processor family. Later variants are
// supersets of earlier ones, so variants compare by ordinal.
type CPU uint8

// Supported CPU variants, ordered by generation.
const (
	M68000 CPU = iota
	M68010
	M68020
	M68030
	M68040
	M68060
)

// ErrUnknownCPU is returned when a CPU name can not be resolved.
var ErrUnknownCPU = errors.New("unknown CPU variant")

// CPUs lists all supported variants in ascending order.
var CPUs = []CPU{M68000, M68010, M68020, M68030, M68040, M68060}

var cpuNames = map[CPU]string{
	M68000: "68000",
	M68010: "68010",
	M68020: "68020",
	M68030: "68030",
	M68040: "68040",
	M68060: "68060",
}

var cpuTree = newCPUTree()

func newCPUTree() *prefixtree.Tree[CPU] {
	tree := prefixtree.New[CPU]()
	for _, cpu := range CPUs {
		name := cpuNames[cpu]
		tree.Add(name, cpu)
		tree.Add("m"+name, cpu)
		tree.Add("mc"+name, cpu)
	}
	return tree
}

// String returns the numeric model name like "68020".
func (c CPU) String() string {
	name, ok := cpuNames[c]
	if !ok {
		return fmt.Sprintf("CPU(%d)", uint8(c))
	}
	return name
}

// Supports returns whether code requiring the given variant can run on c.
func (c CPU) Supports(required CPU) bool {
	return c >= required
}

// ParseCPU resolves a CPU name. Accepted are the model numbers with an
// optional "m" or "mc" prefix, in any case, and unique prefixes of them.
func ParseCPU(name string) (CPU, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return M68000, fmt.Errorf("%w: empty name", ErrUnknownCPU)
	}
	cpu, err := cpuTree.FindValue(key)
	if err != nil {
		return M68000, fmt.Errorf("%w '%s': %w", ErrUnknownCPU, name, err)
	}
	return cpu, nil
}

// CPUNames returns the model names of all supported variants.
func CPUNames() []string {
	names := make([]string, 0, len(CPUs))
	for _, cpu := range CPUs {
		names = append(names, cpu.String())
	}
	return names
}
