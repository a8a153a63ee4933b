package searchtree

import (
	"github.com/katalvlaran/dsa/bintree"
	"github.com/katalvlaran/dsa/ordmap"
)

// splay moves every accessed node to the root.
type splay[K, V any] struct{}

func (splay[K, V]) name() string { return "SplayTreeMap" }

// access splays p, or for a failed search the last real node on the path.
func (s splay[K, V]) access(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	if IsSentinel(p) {
		p = p.Parent()
	}
	if p != nil {
		s.splay(t, p)
	}
}

func (s splay[K, V]) inserted(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	s.splay(t, p)
}

func (s splay[K, V]) removed(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	if !p.IsRoot() {
		s.splay(t, p.Parent())
	}
}

func (splay[K, V]) splay(t *Tree[K, V], p *bintree.Node[*ordmap.Entry[K, V]]) {
	for !p.IsRoot() {
		parent := p.Parent()
		grand := parent.Parent()
		switch {
		case grand == nil: // zig
			t.rotate(p)
		case (parent == grand.Left()) == (p == parent.Left()): // zig-zig
			t.rotate(parent)
			t.rotate(p)
		default: // zig-zag
			t.rotate(p)
			t.rotate(p)
		}
	}
}
