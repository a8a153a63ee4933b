// SPDX-License-Identifier: MIT

package bintree

// PreOrder returns all nodes, each before its subtrees.
func (t *Tree[E]) PreOrder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	var walk func(*Node[E])
	walk = func(p *Node[E]) {
		if p == nil {
			return
		}
		out = append(out, p)
		walk(p.left)
		walk(p.right)
	}
	walk(t.root)
	return out
}

// InOrder returns all nodes, left subtree first, then the node, then the
// right subtree.
func (t *Tree[E]) InOrder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	var walk func(*Node[E])
	walk = func(p *Node[E]) {
		if p == nil {
			return
		}
		walk(p.left)
		out = append(out, p)
		walk(p.right)
	}
	walk(t.root)
	return out
}

// PostOrder returns all nodes, each after its subtrees.
func (t *Tree[E]) PostOrder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	var walk func(*Node[E])
	walk = func(p *Node[E]) {
		if p == nil {
			return
		}
		walk(p.left)
		walk(p.right)
		out = append(out, p)
	}
	walk(t.root)
	return out
}

// LevelOrder returns all nodes breadth-first, left to right.
func (t *Tree[E]) LevelOrder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	if t.root == nil {
		return out
	}
	out = append(out, t.root)
	for i := 0; i < len(out); i++ {
		p := out[i]
		if p.left != nil {
			out = append(out, p.left)
		}
		if p.right != nil {
			out = append(out, p.right)
		}
	}
	return out
}
