// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted graphs with Prim-Jarnik's and Kruskal's algorithms.
//
// What is an MST?
//
//	Given an undirected, connected, weighted graph G = (V, E), an MST is a
//	subset T ⊆ E that connects every vertex in V with the smallest
//	possible total weight. A connected graph has an MST with |V|−1 edges.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]*graph.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by weight, then accept an edge
//     whenever its endpoints lie in different disjointset.Forest sets,
//     merging them. Stops once |V|−1 edges are accepted.
//
//   - Time: O(E log E + α(V)·E).
//
//   - PrimJarnik(g) / PrimJarnikFrom(g, root) ([]*graph.Edge, int64, error)
//
//   - Strategy: every vertex sits in a pq.AdaptableHeap keyed by the
//     lightest known edge joining it to the tree. Extracting a vertex
//     emits its connecting edge; its neighbours' keys are lowered with
//     ReplaceKey.
//
//   - Time: O((V + E) log V).
//
//   - Compute(g, opts...) dispatches on WithMethod (Kruskal by default).
//
// Disconnected graphs
//
//	Neither algorithm fails on a disconnected graph. Both return a
//	minimum spanning forest with |V|−c edges, c being the number of
//	components. An empty graph yields no edges.
//
// Determinism
//
//	Kruskal's stable sort keeps equal-weight edges in graph order, so the
//	lightest-first acceptance order is reproducible. Prim-Jarnik emits
//	edges in the order their far endpoints leave the queue.
//
// Error Conditions
//
//   - ErrNilGraph     graph is nil
//   - ErrDirected     graph is directed
//   - ErrUnknownMethod Compute received an unsupported Method
//   - graph.ErrForeignVertex (wrapped) PrimJarnikFrom root not in graph
package prim_kruskal
