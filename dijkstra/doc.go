// Package dijkstra computes single-source shortest paths on graphs with
// non-negative integer edge weights.
//
// What:
//
//   - Dijkstra seeds every vertex into an adaptable priority queue keyed
//     by its tentative distance (start 0, everything else Infinity),
//     repeatedly extracts the minimum and relaxes its outgoing edges with
//     a decrease-key (pq.AdaptableHeap.ReplaceKey).
//   - ShortestPathTree turns the distance map back into a tree of edges:
//     for every reachable vertex other than the start it picks an
//     incoming edge (u,v) with cost(v) == cost(u) + w(u,v).
//   - ShortestPaths returns the distances in a Result and, with
//     WithReturnPath, the edge that last lowered each distance (Prev).
//   - PathTo walks such a tree, or a Prev map, from a destination back to
//     the start.
//
// Options:
//
//   - WithReturnPath()          fill Result.Prev
//   - WithMaxDistance(x)        vertices farther than x keep Infinity (x ≥ 0)
//   - WithInfEdgeThreshold(t)   edges with weight ≥ t are impassable (t > 0)
//
// ShortestPathTree only sees distances, so with WithInfEdgeThreshold it
// may pick an impassable edge that happens to match; use Prev instead.
//
// Infinity:
//
//	Unreachable vertices keep the distance Infinity (math.MaxInt64).
//	Path lengths are added with saturation, so a sum never wraps around,
//	and an unreachable vertex is never used to relax its neighbours.
//
// Ties:
//
//	When several incoming edges satisfy the shortest-path equality the
//	last one in incident-edge order, which is edge insertion order for
//	both graph representations, wins.
//
// Complexity:
//
//   - Time:   O((V + E) log V) for the adjacency map
//   - Memory: O(V)
//
// Errors:
//
//   - ErrNilGraph          graph is nil
//   - ErrNegativeWeight    an edge carries a negative weight
//   - ErrNotReached        PathTo destination has no tree edge
//   - ErrBadMaxDistance, ErrBadInfThreshold  (panics from the option
//     constructors) for a negative cap or a non-positive threshold
//   - graph.ErrForeignVertex (wrapped) start vertex not in the graph
package dijkstra
