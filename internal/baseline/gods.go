package baseline

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/dsa/ordmap"
)

// GodsMap is an ordmap.Map backed by the red-black tree of
// github.com/emirpasic/gods. Keys and values are stored boxed, so
// EntrySet builds fresh entries on every call.
type GodsMap[K, V any] struct {
	tree *redblacktree.Tree
	cmp  ordmap.Comparator[K]
}

var _ ordmap.Map[int, int] = (*GodsMap[int, int])(nil)

// NewGods returns an empty GodsMap ordered naturally.
func NewGods[K cmp.Ordered, V any]() *GodsMap[K, V] {
	return NewGodsFunc[K, V](ordmap.Natural[K]())
}

// NewGodsFunc returns an empty GodsMap ordered by c.
func NewGodsFunc[K, V any](c ordmap.Comparator[K]) *GodsMap[K, V] {
	var comparator utils.Comparator = func(a, b interface{}) int {
		return c(a.(K), b.(K))
	}
	return &GodsMap[K, V]{tree: redblacktree.NewWith(comparator), cmp: c}
}

func (m *GodsMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.tree.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return unbox[V](v), true
}

// Put keeps the originally stored key when an equal key is replaced;
// redblacktree.Put would overwrite it.
func (m *GodsMap[K, V]) Put(key K, value V) (V, bool) {
	if n, ok := m.tree.Floor(key); ok && m.cmp(n.Key.(K), key) == 0 {
		old := unbox[V](n.Value)
		n.Value = value
		return old, true
	}
	m.tree.Put(key, value)
	var zero V
	return zero, false
}

func (m *GodsMap[K, V]) Remove(key K) (V, bool) {
	old, ok := m.Get(key)
	if ok {
		m.tree.Remove(key)
	}
	return old, ok
}

func (m *GodsMap[K, V]) Size() int { return m.tree.Size() }

func (m *GodsMap[K, V]) IsEmpty() bool { return m.tree.Empty() }

func (m *GodsMap[K, V]) EntrySet() []*ordmap.Entry[K, V] {
	out := make([]*ordmap.Entry[K, V], 0, m.tree.Size())
	for k, v := range m.All() {
		out = append(out, ordmap.NewEntry(k, v))
	}
	return out
}

func (m *GodsMap[K, V]) Keys() []K {
	out := make([]K, 0, m.tree.Size())
	for _, k := range m.tree.Keys() {
		out = append(out, k.(K))
	}
	return out
}

func (m *GodsMap[K, V]) Values() []V {
	out := make([]V, 0, m.tree.Size())
	for _, v := range m.tree.Values() {
		out = append(out, unbox[V](v))
	}
	return out
}

func (m *GodsMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.tree.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), unbox[V](it.Value())) {
				return
			}
		}
	}
}

func (m *GodsMap[K, V]) String() string { return ordmap.Format("GodsMap", m.EntrySet()) }

// unbox recovers a stored value; a nil interface (V an interface type
// holding nil) becomes the zero V.
func unbox[V any](x any) V {
	v, _ := x.(V)
	return v
}
