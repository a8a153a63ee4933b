// SPDX-License-Identifier: MIT

package bintree

import "fmt"

// Size returns the number of nodes.
func (t *Tree[E]) Size() int { return t.size }

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[E]) IsEmpty() bool { return t.size == 0 }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[E]) Root() *Node[E] { return t.root }

// Owns reports whether n is a live node of t.
func (t *Tree[E]) Owns(n *Node[E]) bool {
	return n != nil && n.tree == t
}

func (t *Tree[E]) validate(n *Node[E]) error {
	if !t.Owns(n) {
		return ErrForeignPosition
	}
	return nil
}

func (t *Tree[E]) newNode(e E, parent *Node[E]) *Node[E] {
	return &Node[E]{element: e, parent: parent, tree: t}
}

// AddRoot places e at the root of an empty tree.
func (t *Tree[E]) AddRoot(e E) (*Node[E], error) {
	if t.root != nil {
		return nil, ErrNonEmptyTree
	}
	t.root = t.newNode(e, nil)
	t.size = 1
	return t.root, nil
}

// AddLeft creates a left child of p holding e.
func (t *Tree[E]) AddLeft(p *Node[E], e E) (*Node[E], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	if p.left != nil {
		return nil, fmt.Errorf("%w: left", ErrChildExists)
	}
	p.left = t.newNode(e, p)
	t.size++
	return p.left, nil
}

// AddRight creates a right child of p holding e.
func (t *Tree[E]) AddRight(p *Node[E], e E) (*Node[E], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	if p.right != nil {
		return nil, fmt.Errorf("%w: right", ErrChildExists)
	}
	p.right = t.newNode(e, p)
	t.size++
	return p.right, nil
}

// Set replaces the element at p and returns the previous one.
func (t *Tree[E]) Set(p *Node[E], e E) (E, error) {
	if err := t.validate(p); err != nil {
		var zero E
		return zero, err
	}
	old := p.element
	p.element = e
	return old, nil
}

// SetProperty stores v in p's auxiliary slot.
func (t *Tree[E]) SetProperty(p *Node[E], v int) error {
	if err := t.validate(p); err != nil {
		return err
	}
	p.property = v
	return nil
}

// Remove deletes p, which must have at most one child, and promotes that
// child into p's place. The removed element is returned.
func (t *Tree[E]) Remove(p *Node[E]) (E, error) {
	var zero E
	if err := t.validate(p); err != nil {
		return zero, err
	}
	if p.left != nil && p.right != nil {
		return zero, ErrTwoChildren
	}
	child := p.left
	if child == nil {
		child = p.right
	}
	if child != nil {
		child.parent = p.parent
	}
	switch {
	case p == t.root:
		t.root = child
	case p == p.parent.left:
		p.parent.left = child
	default:
		p.parent.right = child
	}
	t.size--

	e := p.element
	p.element = zero
	p.parent, p.left, p.right = nil, nil, nil
	p.tree = nil
	return e, nil
}

// Sibling returns the other child of p's parent, or nil.
func (t *Tree[E]) Sibling(p *Node[E]) (*Node[E], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	if p.parent == nil {
		return nil, nil
	}
	if p == p.parent.left {
		return p.parent.right, nil
	}
	return p.parent.left, nil
}

// NumChildren returns how many children p has.
func (t *Tree[E]) NumChildren(p *Node[E]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	n := 0
	if p.left != nil {
		n++
	}
	if p.right != nil {
		n++
	}
	return n, nil
}

// Depth returns the number of ancestors of p.
func (t *Tree[E]) Depth(p *Node[E]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	d := 0
	for q := p.parent; q != nil; q = q.parent {
		d++
	}
	return d, nil
}

// Height returns the height of the subtree rooted at p; a leaf has height 0.
func (t *Tree[E]) Height(p *Node[E]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	return height(p), nil
}

func height[E any](p *Node[E]) int {
	h := 0
	for _, c := range [2]*Node[E]{p.left, p.right} {
		if c != nil {
			h = max(h, 1+height(c))
		}
	}
	return h
}

// relink makes child the left or right child of parent. child may be nil.
func relink[E any](parent, child *Node[E], makeLeft bool) {
	if makeLeft {
		parent.left = child
	} else {
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// Rotate rotates p above its parent. The in-order sequence is unchanged.
func (t *Tree[E]) Rotate(p *Node[E]) error {
	if err := t.validate(p); err != nil {
		return err
	}
	x := p
	y := x.parent
	if y == nil {
		return ErrRotateRoot
	}
	z := y.parent
	if z == nil {
		t.root = x
		x.parent = nil
	} else {
		relink(z, x, y == z.left)
	}
	if x == y.left {
		relink(y, x.right, true)
		relink(x, y, false)
	} else {
		relink(y, x.left, false)
		relink(x, y, true)
	}
	return nil
}

// Restructure performs a trinode restructuring of x, its parent y and its
// grandparent z. The node that ends up in the middle of the three is
// returned; it takes z's former place in the tree.
//
//	aligned (x, y on the same side):   one rotation of y
//	zig-zag:                           two rotations of x
func (t *Tree[E]) Restructure(x *Node[E]) (*Node[E], error) {
	if err := t.validate(x); err != nil {
		return nil, err
	}
	y := x.parent
	if y == nil || y.parent == nil {
		return nil, ErrNoGrandparent
	}
	z := y.parent
	if (x == y.right) == (y == z.right) {
		if err := t.Rotate(y); err != nil {
			return nil, err
		}
		return y, nil
	}
	if err := t.Rotate(x); err != nil {
		return nil, err
	}
	if err := t.Rotate(x); err != nil {
		return nil, err
	}
	return x, nil
}
