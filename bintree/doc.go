// SPDX-License-Identifier: MIT

// Package bintree provides a linked binary tree with parent back-pointers,
// the structural primitive beneath every search tree in this module.
//
// Positions are *Node[E] handles. A node stays valid until it is removed;
// passing a removed node, or a node of another tree, to a mutating method
// fails with ErrForeignPosition.
//
// Each node carries an auxiliary integer property. The tree never reads
// it; balanced search trees store their height or colour there.
//
// Besides the basic mutators (AddRoot, AddLeft, AddRight, Set, Remove)
// the tree supports the two restructuring primitives used by balanced
// search trees:
//
//	Rotate(x)       rotates x above its parent, preserving in-order sequence
//	Restructure(x)  trinode restructuring of x, its parent and grandparent
//
// Traversals (PreOrder, InOrder, PostOrder, LevelOrder) are materialized
// eagerly into slices.
//
// A Tree is not safe for concurrent use.
package bintree
