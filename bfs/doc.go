// Package bfs provides breadth-first search over a graph.Graph,
// returning the discovery edges, unweighted distances, parent links and
// visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex using a FIFO queue.
//   - Returns a Result containing:
//   - Discovery: vertex -> edge through which it was first reached
//   - Order: visit sequence, start first
//   - Depth: vertex -> distance in edges from start
//   - Parent: vertex -> predecessor in the BFS tree
//   - Vertices unreachable from start are absent; that is not an error.
//   - Honors an optional depth limit (WithMaxDepth).
//   - Typed hooks WithOnEnqueue, WithOnDequeue and WithOnVisit observe the
//     search; an OnVisit error aborts it. WithFilterNeighbor prunes edges.
//
// Determinism
//
//	Outgoing edges are expanded in the order the graph reports them, which
//	is fixed for both graph representations, so the visit sequence is
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for the adjacency map, O(V²) for the matrix
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation or a wrapped graph.ErrForeignVertex
//	}
//	path, _ := res.PathTo(target)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  for an invalid option (negative MaxDepth, or a
//     hook typed for a different graph).
//   - OnVisit errors, wrapped.
//   - graph.ErrForeignVertex (wrapped) if start does not belong to g.
package bfs
