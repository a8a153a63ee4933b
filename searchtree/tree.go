package searchtree

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dsa/bintree"
	"github.com/katalvlaran/dsa/ordmap"
)

// must and check turn an impossible bintree error into a panic. The engine
// only hands bintree positions it owns, so an error here means the tree
// has been corrupted.
func must[T any](v T, err error) T {
	check(err)
	return v
}

func check(err error) {
	if err != nil {
		panic(fmt.Sprintf("searchtree: corrupt tree: %v", err))
	}
}

// IsSentinel reports whether p is an external (leaf) position that holds
// no entry.
func IsSentinel[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) bool {
	return p == nil || p.Element() == nil
}

// Size returns the number of entries.
func (t *Tree[K, V]) Size() int { return t.size }

// IsEmpty reports whether the map has no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Root returns the root position. For an empty map it is a sentinel.
func (t *Tree[K, V]) Root() *bintree.Node[*ordmap.Entry[K, V]] {
	return t.tree.Root()
}

// search descends from the root and returns the position holding key, or
// the sentinel at which key would be inserted.
func (t *Tree[K, V]) search(key K) *bintree.Node[*ordmap.Entry[K, V]] {
	p := t.tree.Root()
	for !IsSentinel(p) {
		c := t.cmp(key, p.Element().Key())
		if c == 0 {
			return p
		}
		if c < 0 {
			p = p.Left()
		} else {
			p = p.Right()
		}
	}
	return p
}

func treeMax[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) *bintree.Node[*ordmap.Entry[K, V]] {
	for !IsSentinel(p.Right()) {
		p = p.Right()
	}
	return p
}

func treeMin[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) *bintree.Node[*ordmap.Entry[K, V]] {
	for !IsSentinel(p.Left()) {
		p = p.Left()
	}
	return p
}

// expand turns sentinel p into a real node holding e.
func (t *Tree[K, V]) expand(p *bintree.Node[*ordmap.Entry[K, V]], e *ordmap.Entry[K, V]) {
	must(t.tree.Set(p, e))
	must(t.tree.AddLeft(p, nil))
	must(t.tree.AddRight(p, nil))
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	p := t.search(key)
	t.bal.access(t, p)
	if IsSentinel(p) {
		var zero V
		return zero, false
	}
	return p.Element().Value(), true
}

// Put stores value under key and returns the value it replaced, if any.
func (t *Tree[K, V]) Put(key K, value V) (V, bool) {
	p := t.search(key)
	if IsSentinel(p) {
		t.expand(p, ordmap.NewEntry(key, value))
		t.size++
		t.bal.inserted(t, p)
		var zero V
		return zero, false
	}
	old := p.Element().SetValue(value)
	t.bal.access(t, p)
	return old, true
}

// Remove deletes key and returns its value.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	p := t.search(key)
	if IsSentinel(p) {
		t.bal.access(t, p)
		var zero V
		return zero, false
	}
	old := p.Element().Value()
	t.bal.access(t, p)

	if !IsSentinel(p.Left()) && !IsSentinel(p.Right()) {
		pred := treeMax(p.Left())
		must(t.tree.Set(p, pred.Element()))
		p = pred
	}
	// p has at least one sentinel child; drop it and promote the other.
	leaf := p.Left()
	if !IsSentinel(leaf) {
		leaf = p.Right()
	}
	sib := must(t.tree.Sibling(leaf))
	must(t.tree.Remove(leaf))
	must(t.tree.Remove(p))
	t.size--
	t.bal.removed(t, sib)
	return old, true
}

func (t *Tree[K, V]) realOnly(ps []*bintree.Node[*ordmap.Entry[K, V]]) []*bintree.Node[*ordmap.Entry[K, V]] {
	out := make([]*bintree.Node[*ordmap.Entry[K, V]], 0, t.size)
	for _, p := range ps {
		if !IsSentinel(p) {
			out = append(out, p)
		}
	}
	return out
}

// InOrder returns the real positions in ascending key order.
func (t *Tree[K, V]) InOrder() []*bintree.Node[*ordmap.Entry[K, V]] {
	return t.realOnly(t.tree.InOrder())
}

// PreOrder returns the real positions, each before its subtrees.
func (t *Tree[K, V]) PreOrder() []*bintree.Node[*ordmap.Entry[K, V]] {
	return t.realOnly(t.tree.PreOrder())
}

// PostOrder returns the real positions, each after its subtrees.
func (t *Tree[K, V]) PostOrder() []*bintree.Node[*ordmap.Entry[K, V]] {
	return t.realOnly(t.tree.PostOrder())
}

// LevelOrder returns the real positions breadth-first.
func (t *Tree[K, V]) LevelOrder() []*bintree.Node[*ordmap.Entry[K, V]] {
	return t.realOnly(t.tree.LevelOrder())
}

// EntrySet returns the entries in ascending key order.
func (t *Tree[K, V]) EntrySet() []*ordmap.Entry[K, V] {
	ps := t.InOrder()
	out := make([]*ordmap.Entry[K, V], len(ps))
	for i, p := range ps {
		out[i] = p.Element()
	}
	return out
}

// Keys returns the keys in ascending order.
func (t *Tree[K, V]) Keys() []K { return ordmap.Keys(t.EntrySet()) }

// Values returns the values in ascending key order.
func (t *Tree[K, V]) Values() []V { return ordmap.Values(t.EntrySet()) }

// All iterates the entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] { return ordmap.Seq(t.EntrySet()) }

// FirstEntry returns the entry with the smallest key.
func (t *Tree[K, V]) FirstEntry() (*ordmap.Entry[K, V], bool) {
	if t.size == 0 {
		return nil, false
	}
	return treeMin(t.tree.Root()).Element(), true
}

// LastEntry returns the entry with the largest key.
func (t *Tree[K, V]) LastEntry() (*ordmap.Entry[K, V], bool) {
	if t.size == 0 {
		return nil, false
	}
	return treeMax(t.tree.Root()).Element(), true
}

// FloorEntry returns the entry with the greatest key <= key.
func (t *Tree[K, V]) FloorEntry(key K) (*ordmap.Entry[K, V], bool) {
	var best *ordmap.Entry[K, V]
	for p := t.tree.Root(); !IsSentinel(p); {
		c := t.cmp(key, p.Element().Key())
		if c == 0 {
			return p.Element(), true
		}
		if c < 0 {
			p = p.Left()
		} else {
			best = p.Element()
			p = p.Right()
		}
	}
	return best, best != nil
}

// CeilingEntry returns the entry with the least key >= key.
func (t *Tree[K, V]) CeilingEntry(key K) (*ordmap.Entry[K, V], bool) {
	var best *ordmap.Entry[K, V]
	for p := t.tree.Root(); !IsSentinel(p); {
		c := t.cmp(key, p.Element().Key())
		if c == 0 {
			return p.Element(), true
		}
		if c > 0 {
			p = p.Right()
		} else {
			best = p.Element()
			p = p.Left()
		}
	}
	return best, best != nil
}

func (t *Tree[K, V]) String() string {
	return ordmap.Format(t.bal.name(), t.EntrySet())
}

// helpers shared by the balancing strategies

func (t *Tree[K, V]) rotate(p *bintree.Node[*ordmap.Entry[K, V]]) {
	check(t.tree.Rotate(p))
}

func (t *Tree[K, V]) restructure(x *bintree.Node[*ordmap.Entry[K, V]]) *bintree.Node[*ordmap.Entry[K, V]] {
	return must(t.tree.Restructure(x))
}

func (t *Tree[K, V]) setProperty(p *bintree.Node[*ordmap.Entry[K, V]], v int) {
	check(t.tree.SetProperty(p, v))
}

func sibling[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) *bintree.Node[*ordmap.Entry[K, V]] {
	parent := p.Parent()
	if parent == nil {
		return nil
	}
	if p == parent.Left() {
		return parent.Right()
	}
	return parent.Left()
}
