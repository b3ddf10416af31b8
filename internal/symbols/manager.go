// Package symbols provides symbol resolution for disassembly listings:
// labels for addresses and names for library vector offsets.
package symbols

import (
	"github.com/retroenv/retrogolib/set"
)

// Manager provides generic symbol tracking by address.
// T is the type of symbol being managed.
type Manager[T any] struct {
	items map[uint32]T
	used  set.Set[uint32]
}

// NewManager creates a new symbol manager.
func NewManager[T any]() *Manager[T] {
	return &Manager[T]{
		items: make(map[uint32]T),
		used:  set.New[uint32](),
	}
}

// Get returns the item at the given address.
func (m *Manager[T]) Get(address uint32) (T, bool) {
	item, ok := m.items[address]
	return item, ok
}

// Set sets the item at the given address. An existing item is kept.
func (m *Manager[T]) Set(address uint32, item T) {
	if _, ok := m.items[address]; ok {
		return
	}
	m.items[address] = item
}

// Len returns the number of items in the manager.
func (m *Manager[T]) Len() int {
	return len(m.items)
}

// MarkUsed marks an address as used.
func (m *Manager[T]) MarkUsed(address uint32) {
	m.used.Add(address)
}

// UsedCount returns the number of addresses marked as used.
func (m *Manager[T]) UsedCount() int {
	return len(m.used)
}
