package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsa/graph"
	"github.com/katalvlaran/dsa/pq"
)

// unconnected is the queue key of a vertex with no known edge to the tree.
const unconnected = math.MaxInt64

// PrimJarnik computes a minimum spanning forest of g, growing the first
// tree from the first vertex in graph order.
func PrimJarnik[V any, E graph.Weighted](g graph.Graph[V, E]) ([]*graph.Edge[V, E], int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, nil
	}
	return prim(g, vertices, vertices[0])
}

// PrimJarnikFrom is PrimJarnik with an explicit root vertex.
func PrimJarnikFrom[V any, E graph.Weighted](g graph.Graph[V, E], root *graph.Vertex[V, E]) ([]*graph.Edge[V, E], int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	if _, err := g.OutDegree(root); err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: root vertex: %w", err)
	}
	return prim(g, g.Vertices(), root)
}

func prim[V any, E graph.Weighted](g graph.Graph[V, E], vertices []*graph.Vertex[V, E], root *graph.Vertex[V, E]) ([]*graph.Edge[V, E], int64, error) {
	var (
		queue   = pq.NewAdaptable[int64, *graph.Vertex[V, E]]()
		entries = make(map[*graph.Vertex[V, E]]*pq.Entry[int64, *graph.Vertex[V, E]], len(vertices))
		connect = make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], len(vertices))
		known   = make(map[*graph.Vertex[V, E]]bool, len(vertices))
		mst     = make([]*graph.Edge[V, E], 0, len(vertices)-1)
		total   int64
	)
	for _, v := range vertices {
		key := int64(unconnected)
		if v == root {
			key = 0
		}
		entries[v] = queue.Insert(key, v)
	}

	for !queue.IsEmpty() {
		entry, _ := queue.DeleteMin()
		u := entry.Value()
		known[u] = true
		if e, ok := connect[u]; ok {
			mst = append(mst, e)
			total += e.Element().Weight()
		}

		edges, err := g.OutgoingEdges(u)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: outgoing edges: %w", err)
		}
		for _, e := range edges {
			z, err := g.Opposite(u, e)
			if err != nil {
				return nil, 0, fmt.Errorf("prim_kruskal: opposite: %w", err)
			}
			if known[z] {
				continue
			}
			w := e.Element().Weight()
			if _, ok := connect[z]; ok && w >= entries[z].Key() {
				continue
			}
			connect[z] = e
			if err = queue.ReplaceKey(entries[z], w); err != nil {
				return nil, 0, fmt.Errorf("prim_kruskal: replace key: %w", err)
			}
		}
	}

	return mst, total, nil
}
