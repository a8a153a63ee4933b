// Package dfs implements depth-first search traversal, cycle detection
// and topological sort over a graph.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. The result records, for every reached vertex, the
//     edge through which it was discovered, its depth and its parent,
//     together with pre-order and post-order sequences. Supports:
//   - Pre-order and post-order hooks
//   - Depth limiting
//   - Full (forest) traversal covering every component
//   - FindCycle / HasCycle: report one cycle as a list of edges, using
//     vertex colouring (White, Gray, Black) for directed graphs and
//     non-tree edges for undirected graphs.
//   - TopologicalSort: linear ordering of a directed acyclic graph,
//     returning ErrCycleDetected if a cycle exists.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// The adjacency matrix representation makes each incident-edge scan
// O(V), so every bound above becomes O(V²) there.
//
// Errors:
//
//   - ErrGraphNil         graph is nil
//   - ErrOptionViolation  invalid option value, or a hook typed for a
//     different graph
//   - ErrNotDirected      TopologicalSort on an undirected graph
//   - ErrCycleDetected    cycle discovered by TopologicalSort
//   - graph.ErrForeignVertex (wrapped) start vertex not in the graph
//   - hook errors         propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g, start, opts...) (*Result, error)
//   - FindCycle(g) ([]*graph.Edge, error), HasCycle(g) (bool, error)
//   - TopologicalSort(g) ([]*graph.Vertex, error)
//   - DefaultOptions(), WithOnVisit(), WithOnExit(), WithMaxDepth(),
//     WithFullTraversal()
package dfs
