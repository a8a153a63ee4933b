package searchtree

import (
	"github.com/katalvlaran/dsa/bintree"
	"github.com/katalvlaran/dsa/ordmap"
)

// avl keeps |height(left) - height(right)| <= 1 at every node. Heights
// live in the node property; sentinels have height 0.
type avl[K, V any] struct{}

func (avl[K, V]) name() string { return "AVLTreeMap" }

func (avl[K, V]) access(*Tree[K, V], *bintree.Node[*ordmap.Entry[K, V]]) {}

func (a avl[K, V]) inserted(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	a.rebalance(t, p)
}

func (a avl[K, V]) removed(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	if !p.IsRoot() {
		a.rebalance(t, p.Parent())
	}
}

func avlHeight[K, V any](p *bintree.Node[*ordmap.Entry[K, V]]) int {
	if p == nil {
		return 0
	}
	return p.Property()
}

func (avl[K, V]) recompute(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	t.setProperty(p, 1+max(avlHeight(p.Left()), avlHeight(p.Right())))
}

func (avl[K, V]) balanced(p *bintree.Node[*ordmap.Entry[K, V]]) bool {
	d := avlHeight(p.Left()) - avlHeight(p.Right())
	return -1 <= d && d <= 1
}

// taller returns the child of p with the greater height. On a tie the
// child on the same side as p itself is chosen, so that restructuring
// uses a single rotation.
func (avl[K, V]) taller(p *bintree.Node[*ordmap.Entry[K, V]]) *bintree.Node[*ordmap.Entry[K, V]] {
	hl, hr := avlHeight(p.Left()), avlHeight(p.Right())
	switch {
	case hl > hr:
		return p.Left()
	case hl < hr:
		return p.Right()
	case p.IsRoot() || p == p.Parent().Left():
		return p.Left()
	default:
		return p.Right()
	}
}

// rebalance walks from p towards the root, restructuring unbalanced nodes,
// until a height stops changing.
func (a avl[K, V]) rebalance(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	for p != nil {
		old := avlHeight(p)
		if !a.balanced(p) {
			p = t.restructure(a.taller(a.taller(p)))
			a.recompute(t, p.Left())
			a.recompute(t, p.Right())
		}
		a.recompute(t, p)
		if avlHeight(p) == old {
			return
		}
		p = p.Parent()
	}
}
