package skiplist

import (
	"cmp"
	"iter"
	"math/rand"

	"github.com/katalvlaran/dsa/ordmap"
)

const (
	minusInf = -1
	plusInf  = 1
)

type node[K, V any] struct {
	entry *ordmap.Entry[K, V] // shared by every node of a tower; nil in sentinels
	inf   int8                // minusInf, plusInf or 0
	above *node[K, V]
	below *node[K, V]
	prev  *node[K, V]
	next  *node[K, V]
}

// Map is an ordered map backed by a skip list.
type Map[K, V any] struct {
	head   *node[K, V] // top-left sentinel
	tail   *node[K, V] // top-right sentinel
	height int
	size   int
	cmp    ordmap.Comparator[K]
	rng    *rand.Rand
}

var _ ordmap.Map[int, int] = (*Map[int, int])(nil)

// New returns an empty skip list ordered naturally.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](ordmap.Natural[K](), opts...)
}

// NewFunc returns an empty skip list ordered by c.
func NewFunc[K, V any](c ordmap.Comparator[K], opts ...Option) *Map[K, V] {
	if c == nil {
		panic("skiplist: nil comparator")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Map[K, V]{cmp: c, rng: cfg.rng}
	m.head = &node[K, V]{inf: minusInf}
	m.tail = &node[K, V]{inf: plusInf}
	m.head.next, m.tail.prev = m.tail, m.head
	m.height = 1
	return m
}

// compare orders key against the key held by n, sentinels included.
func (m *Map[K, V]) compare(key K, n *node[K, V]) int {
	switch n.inf {
	case minusInf:
		return 1
	case plusInf:
		return -1
	}
	return m.cmp(key, n.entry.Key())
}

// lookUp returns the bottom-level node with the greatest key <= key,
// possibly the -inf sentinel.
func (m *Map[K, V]) lookUp(key K) *node[K, V] {
	p := m.head
	for {
		for m.compare(key, p.next) >= 0 {
			p = p.next
		}
		if p.below == nil {
			return p
		}
		p = p.below
	}
}

func (m *Map[K, V]) found(p *node[K, V], key K) bool {
	return p.inf == 0 && m.cmp(key, p.entry.Key()) == 0
}

// insertAfterAbove links a new node holding e right of p and above q.
func insertAfterAbove[K, V any](p, q *node[K, V], e *ordmap.Entry[K, V]) *node[K, V] {
	n := &node[K, V]{entry: e, prev: p, next: p.next, below: q}
	p.next.prev = n
	p.next = n
	if q != nil {
		q.above = n
	}
	return n
}

// addLevel pushes a new empty level on top of the list.
func (m *Map[K, V]) addLevel() {
	head := &node[K, V]{inf: minusInf, below: m.head}
	tail := &node[K, V]{inf: plusInf, below: m.tail}
	head.next, tail.prev = tail, head
	m.head.above, m.tail.above = head, tail
	m.head, m.tail = head, tail
	m.height++
}

func (m *Map[K, V]) flip() bool { return m.rng.Intn(2) == 0 }

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := m.lookUp(key)
	if !m.found(p, key) {
		var zero V
		return zero, false
	}
	return p.entry.Value(), true
}

// Put stores value under key and returns the value it replaced, if any.
// A new key is linked at level 0 and its tower grows one level per
// successful coin flip.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	p := m.lookUp(key)
	if m.found(p, key) {
		return p.entry.SetValue(value), true
	}

	e := ordmap.NewEntry(key, value)
	q := insertAfterAbove(p, nil, e)
	for level := 1; m.flip(); level++ {
		if level >= m.height {
			m.addLevel()
		}
		for p.above == nil {
			p = p.prev
		}
		p = p.above
		q = insertAfterAbove(p, q, e)
	}
	m.size++
	var zero V
	return zero, false
}

// Remove deletes key, unlinking its whole tower.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	p := m.lookUp(key)
	if !m.found(p, key) {
		var zero V
		return zero, false
	}
	v := p.entry.Value()
	for q := p; q != nil; q = q.above {
		q.prev.next = q.next
		q.next.prev = q.prev
	}
	m.size--
	for m.height > 1 && m.head.next == m.tail {
		m.head, m.tail = m.head.below, m.tail.below
		m.head.above, m.tail.above = nil, nil
		m.height--
	}
	return v, true
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Height returns the number of levels, at least 1.
func (m *Map[K, V]) Height() int { return m.height }

// EntrySet returns the entries in ascending key order.
func (m *Map[K, V]) EntrySet() []*ordmap.Entry[K, V] {
	p := m.head
	for p.below != nil {
		p = p.below
	}
	out := make([]*ordmap.Entry[K, V], 0, m.size)
	for p = p.next; p.inf == 0; p = p.next {
		out = append(out, p.entry)
	}
	return out
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K { return ordmap.Keys(m.EntrySet()) }

// Values returns the values in ascending key order.
func (m *Map[K, V]) Values() []V { return ordmap.Values(m.EntrySet()) }

// All iterates the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return ordmap.Seq(m.EntrySet()) }

func (m *Map[K, V]) String() string {
	return ordmap.Format("SkipListMap", m.EntrySet())
}

// towerHeight returns how many levels the tower of key spans, or 0.
func (m *Map[K, V]) towerHeight(key K) int {
	p := m.lookUp(key)
	if !m.found(p, key) {
		return 0
	}
	h := 0
	for ; p != nil; p = p.above {
		h++
	}
	return h
}
