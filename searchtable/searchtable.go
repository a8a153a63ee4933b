// Package searchtable implements an ordered map on a sorted slice.
//
// Lookups binary-search the slice in O(log n); Put and Remove shift the
// tail of the slice and cost O(n). It is the baseline the tree and skip
// list maps improve on, and the fastest of them for small or read-mostly
// maps.
package searchtable

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/dsa/ordmap"
)

// Map is an ordered map backed by a sorted slice of entries.
type Map[K, V any] struct {
	table []*ordmap.Entry[K, V]
	cmp   ordmap.Comparator[K]
}

var _ ordmap.Map[int, int] = (*Map[int, int])(nil)

// New returns an empty table ordered naturally.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](ordmap.Natural[K]())
}

// NewFunc returns an empty table ordered by c.
func NewFunc[K, V any](c ordmap.Comparator[K]) *Map[K, V] {
	if c == nil {
		panic("searchtable: nil comparator")
	}
	return &Map[K, V]{cmp: c}
}

// find returns the index of key, or the index at which it would be
// inserted, and whether it is present.
func (m *Map[K, V]) find(key K) (int, bool) {
	return slices.BinarySearchFunc(m.table, key, func(e *ordmap.Entry[K, V], k K) int {
		return m.cmp(e.Key(), k)
	})
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.table[i].Value(), true
}

// Put stores value under key and returns the value it replaced, if any.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	i, ok := m.find(key)
	if ok {
		return m.table[i].SetValue(value), true
	}
	m.table = slices.Insert(m.table, i, ordmap.NewEntry(key, value))
	var zero V
	return zero, false
}

// Remove deletes key and returns its value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i, ok := m.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	v := m.table[i].Value()
	m.table = slices.Delete(m.table, i, i+1)
	return v, true
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return len(m.table) }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return len(m.table) == 0 }

// EntrySet returns a copy of the entries in ascending key order.
func (m *Map[K, V]) EntrySet() []*ordmap.Entry[K, V] { return slices.Clone(m.table) }

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K { return ordmap.Keys(m.table) }

// Values returns the values in ascending key order.
func (m *Map[K, V]) Values() []V { return ordmap.Values(m.table) }

// All iterates the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return ordmap.Seq(m.EntrySet()) }

func (m *Map[K, V]) at(i int) (*ordmap.Entry[K, V], bool) {
	if i < 0 || i >= len(m.table) {
		return nil, false
	}
	return m.table[i], true
}

// FirstEntry returns the entry with the smallest key.
func (m *Map[K, V]) FirstEntry() (*ordmap.Entry[K, V], bool) { return m.at(0) }

// LastEntry returns the entry with the largest key.
func (m *Map[K, V]) LastEntry() (*ordmap.Entry[K, V], bool) { return m.at(len(m.table) - 1) }

// CeilingEntry returns the entry with the least key >= key.
func (m *Map[K, V]) CeilingEntry(key K) (*ordmap.Entry[K, V], bool) {
	i, _ := m.find(key)
	return m.at(i)
}

// FloorEntry returns the entry with the greatest key <= key.
func (m *Map[K, V]) FloorEntry(key K) (*ordmap.Entry[K, V], bool) {
	i, ok := m.find(key)
	if ok {
		return m.at(i)
	}
	return m.at(i - 1)
}

func (m *Map[K, V]) String() string {
	return ordmap.Format("SearchTableMap", m.table)
}
