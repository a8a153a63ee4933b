// SPDX-License-Identifier: MIT

package bintree

import "errors"

var (
	// ErrForeignPosition is returned for a nil node, a node owned by
	// another tree, or a node already removed from this tree.
	ErrForeignPosition = errors.New("bintree: position does not belong to this tree")

	// ErrNonEmptyTree is returned by AddRoot when the tree already has a root.
	ErrNonEmptyTree = errors.New("bintree: tree is not empty")

	// ErrChildExists is returned when adding a child into an occupied slot.
	ErrChildExists = errors.New("bintree: child already exists")

	// ErrTwoChildren is returned when removing a node with two children.
	ErrTwoChildren = errors.New("bintree: node has two children")

	// ErrRotateRoot is returned when rotating the root.
	ErrRotateRoot = errors.New("bintree: cannot rotate the root")

	// ErrNoGrandparent is returned by Restructure when x has no grandparent.
	ErrNoGrandparent = errors.New("bintree: node has no grandparent")
)

// Node is a position in a Tree.
type Node[E any] struct {
	element  E
	parent   *Node[E]
	left     *Node[E]
	right    *Node[E]
	property int
	tree     *Tree[E] // nil once removed
}

// Element returns the element stored at n.
func (n *Node[E]) Element() E { return n.element }

// Parent returns n's parent, or nil at the root.
func (n *Node[E]) Parent() *Node[E] { return n.parent }

// Left returns n's left child, or nil.
func (n *Node[E]) Left() *Node[E] { return n.left }

// Right returns n's right child, or nil.
func (n *Node[E]) Right() *Node[E] { return n.right }

// Property returns the auxiliary integer slot.
func (n *Node[E]) Property() int { return n.property }

// IsRoot reports whether n has no parent.
func (n *Node[E]) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node[E]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Tree is a linked binary tree.
type Tree[E any] struct {
	root *Node[E]
	size int
}

// New returns an empty tree.
func New[E any]() *Tree[E] {
	return &Tree[E]{}
}
