// SPDX-License-Identifier: MIT

package pq

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dsa/ordmap"
)

// AdaptableHeap is a Heap whose entries can be removed or re-keyed in
// place.
type AdaptableHeap[K, V any] struct {
	Heap[K, V]
}

// NewAdaptable returns an empty adaptable heap ordered naturally.
func NewAdaptable[K cmp.Ordered, V any]() *AdaptableHeap[K, V] {
	return NewAdaptableFunc[K, V](ordmap.Natural[K]())
}

// NewAdaptableFunc returns an empty adaptable heap ordered by c.
func NewAdaptableFunc[K, V any](c ordmap.Comparator[K]) *AdaptableHeap[K, V] {
	return &AdaptableHeap[K, V]{Heap: *NewFunc[K, V](c)}
}

// validate checks that e is live in this heap and its index is current.
func (h *AdaptableHeap[K, V]) validate(e *Entry[K, V]) error {
	if e == nil || e.heap != &h.Heap {
		return fmt.Errorf("%w: not stored in this queue", ErrInvalidEntry)
	}
	if e.index >= len(h.list) || h.list[e.index] != e {
		return fmt.Errorf("%w: stale index %d", ErrInvalidEntry, e.index)
	}
	return nil
}

// Remove deletes e from the heap.
func (h *AdaptableHeap[K, V]) Remove(e *Entry[K, V]) error {
	if err := h.validate(e); err != nil {
		return err
	}
	i := e.index
	last := len(h.list) - 1
	if i == last {
		h.removeLast()
		return nil
	}
	h.swap(i, last)
	h.removeLast()
	h.bubble(i)
	return nil
}

// ReplaceKey changes the key of e and restores heap order.
func (h *AdaptableHeap[K, V]) ReplaceKey(e *Entry[K, V], key K) error {
	if err := h.validate(e); err != nil {
		return err
	}
	e.key = key
	h.bubble(e.index)
	return nil
}

// ReplaceValue changes the value of e.
func (h *AdaptableHeap[K, V]) ReplaceValue(e *Entry[K, V], value V) error {
	if err := h.validate(e); err != nil {
		return err
	}
	e.value = value
	return nil
}
