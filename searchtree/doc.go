// Package searchtree implements ordered maps on binary search trees:
// an unbalanced BST, an AVL tree, a red-black tree and a splay tree.
//
// All four share one engine (Tree) built on a bintree.Tree whose leaves
// are sentinels: external nodes holding a nil entry. Searching always ends
// on a node, either the one holding the key or the sentinel where the key
// would be inserted, so insertion expands a sentinel into a real node with
// two fresh sentinel children and deletion collapses a node together with
// one sentinel child.
//
// Balancing is a strategy plugged into the engine. The strategy is told
// when a position was accessed, when a node was inserted and which node
// was promoted by a deletion:
//
//	BST        no rebalancing
//	AVL        heights in the node property, trinode restructuring
//	RedBlack   colours in the node property (0 black, 1 red)
//	Splay      every access moves the node to the root
//
// Removing a node with two real children promotes its in-order
// predecessor, the maximum of the left subtree.
//
// Complexity (n entries, h tree height):
//
//	Get / Put / Remove   O(h); h = O(log n) for AVL and red-black,
//	                     amortized O(log n) for splay, O(n) worst for BST
//	EntrySet / traversal O(n)
//
// Trees are not safe for concurrent use.
package searchtree
