// Package dsa is a collection of classic in-memory data structures and
// graph algorithms, written generically and kept deterministic so every
// result can be reproduced and asserted in tests.
//
// What's inside
//
//	Containers:
//		• bintree/     : linked binary tree with positional navigation and traversals
//		• ordmap/      : the ordered Map contract shared by every map below
//		• searchtree/  : BST, AVL, red-black and splay trees behind one balance hook
//		• skiplist/    : randomized skip list (seedable)
//		• searchtable/ : sorted-array map with binary search
//		• pq/          : binary heap priority queue and its adaptable variant
//		• disjointset/ : union-find forest with union by size and path compression
//
//	Graphs:
//		• graph/        : Graph contract, adjacency map and adjacency matrix
//		• builder/      : deterministic topologies (complete, bipartite, ring, Platonic, random regular, ...)
//		• bfs/, dfs/    : traversals, cycle detection and topological sort
//		• dijkstra/     : single-source shortest paths and shortest-path trees
//		• prim_kruskal/ : minimum spanning trees (Prim–Jarník, Kruskal)
//
// Small example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := graph.NewAdjacencyMap[string, graph.Weight]()
//	a, b := g.InsertVertex("A"), g.InsertVertex("B")
//	_, _ = g.InsertEdge(a, b, 1)
//	res, _ := bfs.BFS(g, a)
//
// None of the structures are safe for concurrent use; callers synchronise
// externally.
//
// cmd/dsabench replays a seeded workload against every ordered map, checks
// them against a B-tree oracle and runs each graph algorithm on a random
// graph.
package dsa
