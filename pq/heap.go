// SPDX-License-Identifier: MIT

package pq

import (
	"cmp"

	"github.com/katalvlaran/dsa/ordmap"
)

// Heap is a binary min-heap keyed by a comparator.
type Heap[K, V any] struct {
	list []*Entry[K, V]
	cmp  ordmap.Comparator[K]
}

// New returns an empty heap ordered naturally.
func New[K cmp.Ordered, V any]() *Heap[K, V] {
	return NewFunc[K, V](ordmap.Natural[K]())
}

// NewFunc returns an empty heap ordered by c.
func NewFunc[K, V any](c ordmap.Comparator[K]) *Heap[K, V] {
	if c == nil {
		panic("pq: nil comparator")
	}
	return &Heap[K, V]{cmp: c}
}

// Size returns the number of entries.
func (h *Heap[K, V]) Size() int { return len(h.list) }

// IsEmpty reports whether the heap has no entries.
func (h *Heap[K, V]) IsEmpty() bool { return len(h.list) == 0 }

// Insert adds a new entry and returns it.
func (h *Heap[K, V]) Insert(key K, value V) *Entry[K, V] {
	e := &Entry[K, V]{key: key, value: value, index: len(h.list), heap: h}
	h.list = append(h.list, e)
	h.upHeap(e.index)
	return e
}

// Min returns the entry with the smallest key without removing it.
func (h *Heap[K, V]) Min() (*Entry[K, V], bool) {
	if len(h.list) == 0 {
		return nil, false
	}
	return h.list[0], true
}

// DeleteMin removes and returns the entry with the smallest key.
func (h *Heap[K, V]) DeleteMin() (*Entry[K, V], bool) {
	if len(h.list) == 0 {
		return nil, false
	}
	e := h.list[0]
	h.swap(0, len(h.list)-1)
	h.removeLast()
	h.downHeap(0)
	return e, true
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *Heap[K, V]) less(i, j int) bool {
	return h.cmp(h.list[i].key, h.list[j].key) < 0
}

// swap exchanges two slots and keeps both entries' indices in step.
func (h *Heap[K, V]) swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
	h.list[i].index = i
	h.list[j].index = j
}

func (h *Heap[K, V]) removeLast() {
	last := len(h.list) - 1
	e := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	e.heap = nil
}

func (h *Heap[K, V]) upHeap(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[K, V]) downHeap(i int) {
	for left(i) < len(h.list) {
		small := left(i)
		if r := right(i); r < len(h.list) && h.less(r, small) {
			small = r
		}
		if !h.less(small, i) {
			return
		}
		h.swap(i, small)
		i = small
	}
}

// bubble restores heap order around slot i after its key changed.
func (h *Heap[K, V]) bubble(i int) {
	if i > 0 && h.less(i, parent(i)) {
		h.upHeap(i)
	} else {
		h.downHeap(i)
	}
}
