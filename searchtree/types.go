package searchtree

import (
	"cmp"

	"github.com/katalvlaran/dsa/bintree"
	"github.com/katalvlaran/dsa/ordmap"
)

// Colours stored in the node property of a red-black tree.
const (
	Black = 0
	Red   = 1
)

// Tree is an ordered map backed by a binary search tree with sentinel
// leaves. Use one of the New* constructors.
type Tree[K, V any] struct {
	tree *bintree.Tree[*ordmap.Entry[K, V]]
	cmp  ordmap.Comparator[K]
	bal  balancer[K, V]
	size int
}

var _ ordmap.Map[int, int] = (*Tree[int, int])(nil)

// balancer is the rebalancing strategy. Each hook receives the position
// the engine just touched:
//   - access: the node found by a search, or the sentinel where it ended
//   - inserted: the node that was just expanded from a sentinel
//   - removed: the child promoted into the place of a deleted node
type balancer[K, V any] interface {
	name() string
	access(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]])
	inserted(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]])
	removed(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]])
}

func newTree[K, V any](c ordmap.Comparator[K], b balancer[K, V]) *Tree[K, V] {
	if c == nil {
		panic("searchtree: nil comparator")
	}
	t := &Tree[K, V]{
		tree: bintree.New[*ordmap.Entry[K, V]](),
		cmp:  c,
		bal:  b,
	}
	must(t.tree.AddRoot(nil))
	return t
}

// NewBST returns an unbalanced binary search tree map ordered naturally.
func NewBST[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewBSTFunc[K, V](ordmap.Natural[K]())
}

// NewBSTFunc returns an unbalanced binary search tree map ordered by c.
func NewBSTFunc[K, V any](c ordmap.Comparator[K]) *Tree[K, V] {
	return newTree[K, V](c, plain[K, V]{})
}

// NewAVL returns an AVL tree map ordered naturally.
func NewAVL[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewAVLFunc[K, V](ordmap.Natural[K]())
}

// NewAVLFunc returns an AVL tree map ordered by c.
func NewAVLFunc[K, V any](c ordmap.Comparator[K]) *Tree[K, V] {
	return newTree[K, V](c, avl[K, V]{})
}

// NewRedBlack returns a red-black tree map ordered naturally.
func NewRedBlack[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewRedBlackFunc[K, V](ordmap.Natural[K]())
}

// NewRedBlackFunc returns a red-black tree map ordered by c.
func NewRedBlackFunc[K, V any](c ordmap.Comparator[K]) *Tree[K, V] {
	return newTree[K, V](c, redBlack[K, V]{})
}

// NewSplay returns a splay tree map ordered naturally.
func NewSplay[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewSplayFunc[K, V](ordmap.Natural[K]())
}

// NewSplayFunc returns a splay tree map ordered by c.
func NewSplayFunc[K, V any](c ordmap.Comparator[K]) *Tree[K, V] {
	return newTree[K, V](c, splay[K, V]{})
}

type plain[K, V any] struct{}

func (plain[K, V]) name() string                                            { return "BSTMap" }
func (plain[K, V]) access(*Tree[K, V], *bintree.Node[*ordmap.Entry[K, V]])   {}
func (plain[K, V]) inserted(*Tree[K, V], *bintree.Node[*ordmap.Entry[K, V]]) {}
func (plain[K, V]) removed(*Tree[K, V], *bintree.Node[*ordmap.Entry[K, V]])  {}
