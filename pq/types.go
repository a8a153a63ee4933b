// SPDX-License-Identifier: MIT

package pq

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry is returned when an entry does not belong to the queue
// or is no longer stored in it.
var ErrInvalidEntry = errors.New("pq: invalid entry")

// Entry is a key-value pair stored in a queue.
type Entry[K, V any] struct {
	key   K
	value V
	index int
	heap  *Heap[K, V] // nil once the entry has left the queue
}

// Key returns the entry's priority.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
func (e *Entry[K, V]) Value() V { return e.value }

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.key, e.value)
}
