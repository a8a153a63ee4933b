package ordmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Comparator orders two keys: negative if a < b, zero if equal,
// positive if a > b.
type Comparator[K any] func(a, b K) int

// Natural returns the comparator of the natural ordering of K.
func Natural[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Entry is a key-value pair stored inside a map. The key is fixed at
// creation; the value may be replaced.
type Entry[K, V any] struct {
	key   K
	value V
}

// NewEntry returns a new entry holding k and v.
func NewEntry[K, V any](k K, v V) *Entry[K, V] {
	return &Entry[K, V]{key: k, value: v}
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
func (e *Entry[K, V]) Value() V { return e.value }

// SetValue replaces the value and returns the previous one.
func (e *Entry[K, V]) SetValue(v V) V {
	old := e.value
	e.value = v
	return old
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}

// Map is an ordered key-value map.
type Map[K, V any] interface {
	// Get returns the value stored under key.
	Get(key K) (V, bool)
	// Put stores value under key. If the key was present, the previous
	// value is returned with replaced set to true.
	Put(key K, value V) (old V, replaced bool)
	// Remove deletes key and returns its value.
	Remove(key K) (V, bool)
	// Size returns the number of entries.
	Size() int
	// IsEmpty reports whether the map holds no entries.
	IsEmpty() bool
	// EntrySet returns all entries in ascending key order.
	EntrySet() []*Entry[K, V]
	// Keys returns all keys in ascending order.
	Keys() []K
	// Values returns all values in ascending key order.
	Values() []V
	// All iterates the map in ascending key order.
	All() iter.Seq2[K, V]
}

// Keys projects the keys of entries.
func Keys[K, V any](entries []*Entry[K, V]) []K {
	out := make([]K, len(entries))
	for i, e := range entries {
		out[i] = e.key
	}
	return out
}

// Values projects the values of entries.
func Values[K, V any](entries []*Entry[K, V]) []V {
	out := make([]V, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// Seq adapts an ascending entry slice to an iterator.
func Seq[K, V any](entries []*Entry[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Format renders entries as "name{k1=v1, k2=v2}".
func Format[K, V any](name string, entries []*Entry[K, V]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
