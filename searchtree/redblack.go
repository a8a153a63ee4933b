package searchtree

import (
	"github.com/katalvlaran/dsa/bintree"
	"github.com/katalvlaran/dsa/ordmap"
)

// redBlack keeps the red-black invariants: the root and sentinels are
// black, a red node has no red child, and every root-to-sentinel path has
// the same number of black nodes.
type redBlack[K, V any] struct{}

func (redBlack[K, V]) name() string { return "RedBlackTreeMap" }

func (redBlack[K, V]) access(*Tree[K, V], *bintree.Node[*ordmap.Entry[K, V]]) {}

func isRed[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) bool {
	return p != nil && p.Property() == Red
}

func (rb redBlack[K, V]) inserted(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	if !p.IsRoot() {
		t.setProperty(p, Red)
		rb.resolveRed(t, p)
	}
	t.setProperty(t.tree.Root(), Black)
}

// resolveRed repairs a red p with a red parent.
func (rb redBlack[K, V]) resolveRed(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	parent := p.Parent()
	if !isRed(parent) {
		return
	}
	uncle := sibling(parent)
	if !isRed(uncle) {
		mid := t.restructure(p)
		t.setProperty(mid, Black)
		t.setProperty(mid.Left(), Red)
		t.setProperty(mid.Right(), Red)
		return
	}
	t.setProperty(parent, Black)
	t.setProperty(uncle, Black)
	grand := parent.Parent()
	if !grand.IsRoot() {
		t.setProperty(grand, Red)
		rb.resolveRed(t, grand)
	}
}

func (rb redBlack[K, V]) removed(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	switch {
	case isRed(p):
		t.setProperty(p, Black)
	case !p.IsRoot():
		sib := sibling(p)
		if !IsSentinel(sib) && (!isRed(sib) || !IsSentinel(sib.Left())) {
			rb.remedyDoubleBlack(t, p)
		}
	}
	t.setProperty(t.tree.Root(), Black)
}

// remedyDoubleBlack fixes a black deficit on the path through p.
func (rb redBlack[K, V]) remedyDoubleBlack(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	z := p.Parent()
	y := sibling(p)
	if isRed(y) {
		// red sibling: rotate it up and retry with a black sibling
		t.rotate(y)
		t.setProperty(y, Black)
		t.setProperty(z, Red)
		rb.remedyDoubleBlack(t, p)
		return
	}
	if isRed(y.Left()) || isRed(y.Right()) {
		x := y.Left()
		if !isRed(x) {
			x = y.Right()
		}
		mid := t.restructure(x)
		if isRed(z) {
			t.setProperty(mid, Red)
		} else {
			t.setProperty(mid, Black)
		}
		t.setProperty(mid.Left(), Black)
		t.setProperty(mid.Right(), Black)
		return
	}
	t.setProperty(y, Red)
	if isRed(z) {
		t.setProperty(z, Black)
	} else if !z.IsRoot() {
		rb.remedyDoubleBlack(t, z)
	}
}
