package baseline

import (
	"cmp"
	"iter"

	"github.com/petar/GoLLRB/llrb"

	"github.com/katalvlaran/dsa/ordmap"
)

// llrbItem wraps an entry so it satisfies llrb.Item.
type llrbItem[K, V any] struct {
	entry *ordmap.Entry[K, V]
	cmp   ordmap.Comparator[K]
}

func (it llrbItem[K, V]) Less(than llrb.Item) bool {
	return it.cmp(it.entry.Key(), than.(llrbItem[K, V]).entry.Key()) < 0
}

// LLRBMap is an ordmap.Map backed by github.com/petar/GoLLRB.
type LLRBMap[K, V any] struct {
	tree *llrb.LLRB
	cmp  ordmap.Comparator[K]
}

var _ ordmap.Map[int, int] = (*LLRBMap[int, int])(nil)

// NewLLRB returns an empty LLRBMap ordered naturally.
func NewLLRB[K cmp.Ordered, V any]() *LLRBMap[K, V] {
	return NewLLRBFunc[K, V](ordmap.Natural[K]())
}

// NewLLRBFunc returns an empty LLRBMap ordered by c.
func NewLLRBFunc[K, V any](c ordmap.Comparator[K]) *LLRBMap[K, V] {
	return &LLRBMap[K, V]{tree: llrb.New(), cmp: c}
}

func (m *LLRBMap[K, V]) item(key K) llrbItem[K, V] {
	return llrbItem[K, V]{entry: searchKey[K, V](key), cmp: m.cmp}
}

func (m *LLRBMap[K, V]) lookup(key K) *ordmap.Entry[K, V] {
	if it := m.tree.Get(m.item(key)); it != nil {
		return it.(llrbItem[K, V]).entry
	}
	return nil
}

func (m *LLRBMap[K, V]) Get(key K) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.Value(), true
	}
	var zero V
	return zero, false
}

func (m *LLRBMap[K, V]) Put(key K, value V) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.SetValue(value), true
	}
	m.tree.ReplaceOrInsert(llrbItem[K, V]{entry: ordmap.NewEntry(key, value), cmp: m.cmp})
	var zero V
	return zero, false
}

func (m *LLRBMap[K, V]) Remove(key K) (V, bool) {
	if it := m.tree.Delete(m.item(key)); it != nil {
		return it.(llrbItem[K, V]).entry.Value(), true
	}
	var zero V
	return zero, false
}

func (m *LLRBMap[K, V]) Size() int { return m.tree.Len() }

func (m *LLRBMap[K, V]) IsEmpty() bool { return m.tree.Len() == 0 }

// ascend visits entries in order until fn returns false.
func (m *LLRBMap[K, V]) ascend(fn func(*ordmap.Entry[K, V]) bool) {
	first := m.tree.Min()
	if first == nil {
		return
	}
	m.tree.AscendGreaterOrEqual(first, func(it llrb.Item) bool {
		return fn(it.(llrbItem[K, V]).entry)
	})
}

func (m *LLRBMap[K, V]) EntrySet() []*ordmap.Entry[K, V] {
	out := make([]*ordmap.Entry[K, V], 0, m.tree.Len())
	m.ascend(func(e *ordmap.Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

func (m *LLRBMap[K, V]) Keys() []K { return ordmap.Keys(m.EntrySet()) }

func (m *LLRBMap[K, V]) Values() []V { return ordmap.Values(m.EntrySet()) }

func (m *LLRBMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ascend(func(e *ordmap.Entry[K, V]) bool {
			return yield(e.Key(), e.Value())
		})
	}
}

func (m *LLRBMap[K, V]) String() string { return ordmap.Format("LLRBMap", m.EntrySet()) }
