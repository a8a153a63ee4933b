// Package disjointset implements a union-find forest of up-trees with
// path compression and union by size.
//
// Every set is a tree of nodes linked by parent pointers; the root is the
// set's representative and points to itself. Find flattens the path it
// walks so that later lookups are near constant; Union hangs the smaller
// tree under the root of the larger one. Over a sequence of m operations
// on n elements the amortized cost per operation is O(α(n)).
//
// Clients address sets by element value: the forest keeps a lookup map
// from value to node.
//
// A Forest is not safe for concurrent use.
package disjointset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement is returned for a value never passed to MakeSet.
	ErrUnknownElement = errors.New("disjointset: unknown element")

	// ErrDuplicateElement is returned by MakeSet for a value already present.
	ErrDuplicateElement = errors.New("disjointset: element already present")

	// ErrForeignNode is returned for a node that belongs to another forest.
	ErrForeignNode = errors.New("disjointset: node does not belong to this forest")
)

// Node is a member of an up-tree.
type Node[E comparable] struct {
	element E
	parent  *Node[E]
	size    int // valid only at the root
	forest  *Forest[E]
}

// Element returns the value held by n.
func (n *Node[E]) Element() E { return n.element }

// Forest is a collection of disjoint sets.
type Forest[E comparable] struct {
	nodes map[E]*Node[E]
	sets  int
}

// New returns an empty forest.
func New[E comparable]() *Forest[E] {
	return &Forest[E]{nodes: make(map[E]*Node[E])}
}

// MakeSet creates a singleton set holding v.
func (f *Forest[E]) MakeSet(v E) (*Node[E], error) {
	if _, ok := f.nodes[v]; ok {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, v)
	}
	n := &Node[E]{element: v, size: 1, forest: f}
	n.parent = n
	f.nodes[v] = n
	f.sets++
	return n, nil
}

// Find returns the root of the set containing v.
func (f *Forest[E]) Find(v E) (*Node[E], error) {
	n, ok := f.nodes[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownElement, v)
	}
	return find(n), nil
}

// FindNode returns the root of the set containing n.
func (f *Forest[E]) FindNode(n *Node[E]) (*Node[E], error) {
	if n == nil || n.forest != f {
		return nil, ErrForeignNode
	}
	return find(n), nil
}

// find ascends to the root and points every node on the way at it.
func find[E comparable](n *Node[E]) *Node[E] {
	if n.parent != n {
		n.parent = find(n.parent)
	}
	return n.parent
}

// Union merges the sets containing a and b and returns the new root. The
// smaller tree goes under the larger root; on a tie a's root goes under
// b's.
func (f *Forest[E]) Union(a, b E) (*Node[E], error) {
	ra, err := f.Find(a)
	if err != nil {
		return nil, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return nil, err
	}
	return f.link(ra, rb), nil
}

func (f *Forest[E]) link(ra, rb *Node[E]) *Node[E] {
	if ra == rb {
		return ra
	}
	if ra.size > rb.size {
		ra, rb = rb, ra
	}
	ra.parent = rb
	rb.size += ra.size
	f.sets--
	return rb
}

// Connected reports whether a and b are in the same set.
func (f *Forest[E]) Connected(a, b E) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// SetSize returns the number of elements in the set containing v.
func (f *Forest[E]) SetSize(v E) (int, error) {
	r, err := f.Find(v)
	if err != nil {
		return 0, err
	}
	return r.size, nil
}

// Len returns the number of elements.
func (f *Forest[E]) Len() int { return len(f.nodes) }

// Count returns the number of disjoint sets.
func (f *Forest[E]) Count() int { return f.sets }
