package symbols

import (
	"fmt"

	"github.com/retroenv/dis68k/internal/hunk"
)

const autoLabelNaming = "loc_%04X"

// Resolver maps addresses and library vector offsets to names.
type Resolver interface {
	// ResolveLVO returns the function name of a library vector offset.
	ResolveLVO(offset int16) (string, bool)
	// ResolveAddress returns the label of an address.
	ResolveAddress(address uint32) (string, bool)
}

// AutoLabels names branch targets with generated labels.
type AutoLabels struct {
	labels *Manager[string]
}

// NewAutoLabels creates labels for the given target addresses.
func NewAutoLabels(targets []uint32) *AutoLabels {
	a := &AutoLabels{labels: NewManager[string]()}
	for _, address := range targets {
		a.labels.Set(address, fmt.Sprintf(autoLabelNaming, address))
	}
	return a
}

// ResolveLVO never resolves for auto labels.
func (a *AutoLabels) ResolveLVO(int16) (string, bool) {
	return "", false
}

// ResolveAddress returns the generated label and marks it as referenced.
func (a *AutoLabels) ResolveAddress(address uint32) (string, bool) {
	name, ok := a.labels.Get(address)
	if ok {
		a.labels.MarkUsed(address)
	}
	return name, ok
}

// Label returns the label defined at address without marking it as
// referenced, for emitting label lines.
func (a *AutoLabels) Label(address uint32) (string, bool) {
	return a.labels.Get(address)
}

// Len returns the number of labels.
func (a *AutoLabels) Len() int {
	return a.labels.Len()
}

// Referenced returns the number of labels that were resolved at least once.
func (a *AutoLabels) Referenced() int {
	return a.labels.UsedCount()
}

// HunkSymbols resolves the symbols of a hunk symbol block.
type HunkSymbols struct {
	symbols *Manager[string]
}

// NewHunkSymbols creates a resolver for symbols whose values are offsets
// into a hunk loaded at base.
func NewHunkSymbols(syms []hunk.Symbol, base uint32) *HunkSymbols {
	h := &HunkSymbols{symbols: NewManager[string]()}
	for _, sym := range syms {
		h.symbols.Set(base+sym.Value, sym.Name)
	}
	return h
}

// ResolveLVO never resolves for hunk symbols.
func (h *HunkSymbols) ResolveLVO(int16) (string, bool) {
	return "", false
}

// ResolveAddress returns the symbol defined at address.
func (h *HunkSymbols) ResolveAddress(address uint32) (string, bool) {
	return h.symbols.Get(address)
}

// Composite queries multiple resolvers in order and returns the first match.
type Composite struct {
	resolvers []Resolver
}

// NewComposite creates a resolver combining the given resolvers.
func NewComposite(resolvers ...Resolver) *Composite {
	return &Composite{resolvers: resolvers}
}

// ResolveLVO returns the first name any resolver knows for the offset.
func (c *Composite) ResolveLVO(offset int16) (string, bool) {
	for _, r := range c.resolvers {
		if name, ok := r.ResolveLVO(offset); ok {
			return name, true
		}
	}
	return "", false
}

// ResolveAddress returns the first label any resolver knows for the address.
func (c *Composite) ResolveAddress(address uint32) (string, bool) {
	for _, r := range c.resolvers {
		if name, ok := r.ResolveAddress(address); ok {
			return name, true
		}
	}
	return "", false
}
