package baseline

import (
	"cmp"
	"iter"

	"github.com/google/btree"

	"github.com/katalvlaran/dsa/ordmap"
)

// btreeDegree is the B-tree node degree used by BTreeMap.
const btreeDegree = 32

// BTreeMap is an ordmap.Map backed by github.com/google/btree.
type BTreeMap[K, V any] struct {
	tree *btree.BTreeG[*ordmap.Entry[K, V]]
}

var _ ordmap.Map[int, int] = (*BTreeMap[int, int])(nil)

// NewBTree returns an empty BTreeMap ordered naturally.
func NewBTree[K cmp.Ordered, V any]() *BTreeMap[K, V] {
	return NewBTreeFunc[K, V](ordmap.Natural[K]())
}

// NewBTreeFunc returns an empty BTreeMap ordered by c.
func NewBTreeFunc[K, V any](c ordmap.Comparator[K]) *BTreeMap[K, V] {
	less := func(a, b *ordmap.Entry[K, V]) bool { return c(a.Key(), b.Key()) < 0 }
	return &BTreeMap[K, V]{tree: btree.NewG[*ordmap.Entry[K, V]](btreeDegree, less)}
}

func searchKey[K, V any](key K) *ordmap.Entry[K, V] {
	var zero V
	return ordmap.NewEntry(key, zero)
}

func (m *BTreeMap[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Get(searchKey[K, V](key))
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value(), true
}

func (m *BTreeMap[K, V]) Put(key K, value V) (V, bool) {
	if e, ok := m.tree.Get(searchKey[K, V](key)); ok {
		return e.SetValue(value), true
	}
	m.tree.ReplaceOrInsert(ordmap.NewEntry(key, value))
	var zero V
	return zero, false
}

func (m *BTreeMap[K, V]) Remove(key K) (V, bool) {
	e, ok := m.tree.Delete(searchKey[K, V](key))
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value(), true
}

func (m *BTreeMap[K, V]) Size() int { return m.tree.Len() }

func (m *BTreeMap[K, V]) IsEmpty() bool { return m.tree.Len() == 0 }

func (m *BTreeMap[K, V]) EntrySet() []*ordmap.Entry[K, V] {
	out := make([]*ordmap.Entry[K, V], 0, m.tree.Len())
	m.tree.Ascend(func(e *ordmap.Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

func (m *BTreeMap[K, V]) Keys() []K { return ordmap.Keys(m.EntrySet()) }

func (m *BTreeMap[K, V]) Values() []V { return ordmap.Values(m.EntrySet()) }

func (m *BTreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(e *ordmap.Entry[K, V]) bool {
			return yield(e.Key(), e.Value())
		})
	}
}

// CeilingEntry returns the entry with the least key >= key.
func (m *BTreeMap[K, V]) CeilingEntry(key K) (*ordmap.Entry[K, V], bool) {
	var found *ordmap.Entry[K, V]
	m.tree.AscendGreaterOrEqual(searchKey[K, V](key), func(e *ordmap.Entry[K, V]) bool {
		found = e
		return false
	})
	return found, found != nil
}

// FloorEntry returns the entry with the greatest key <= key.
func (m *BTreeMap[K, V]) FloorEntry(key K) (*ordmap.Entry[K, V], bool) {
	var found *ordmap.Entry[K, V]
	m.tree.DescendLessOrEqual(searchKey[K, V](key), func(e *ordmap.Entry[K, V]) bool {
		found = e
		return false
	})
	return found, found != nil
}

func (m *BTreeMap[K, V]) String() string { return ordmap.Format("BTreeMap", m.EntrySet()) }
