// Package graph defines a generic Graph of vertices and edges carrying
// arbitrary payloads, in two interchangeable representations:
//
//	AdjacencyMapGraph     per-vertex maps from neighbour to edge;
//	                      O(1) expected GetEdge, O(deg log deg) incident edges
//	AdjacencyMatrixGraph  a square edge matrix indexed by vertex slot;
//	                      O(1) GetEdge, O(n + deg log deg) incident edges, O(n²) memory
//
// Graphs are directed or undirected for their whole lifetime
// (WithDirected). In an undirected AdjacencyMapGraph a vertex's outgoing
// and incoming maps are the same map, so the two views can never drift.
//
// Vertices and edges are handles created by InsertVertex and InsertEdge.
// A handle from another graph, or one already removed, is rejected with
// ErrForeignVertex or ErrForeignEdge. Each handle remembers its position in
// the graph's vertex or edge list, so removal does not scan.
//
// Iteration order is deterministic: Vertices and Edges follow insertion
// order, and incident edges come out in edge insertion order for both
// representations.
//
// Edge payloads that implement Weighted can be fed to the shortest-path
// and spanning-tree packages; Weight is a ready-made payload.
//
// Graphs are not safe for concurrent use.
package graph
