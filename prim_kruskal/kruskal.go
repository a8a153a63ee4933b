package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/dsa/disjointset"
	"github.com/katalvlaran/dsa/graph"
)

// Kruskal computes a minimum spanning forest of g.
//
// Edges are accepted lightest first; equal weights keep graph order. The
// returned slice is in acceptance order.
func Kruskal[V any, E graph.Weighted](g graph.Graph[V, E]) ([]*graph.Edge[V, E], int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	vertices := g.Vertices()
	forest := disjointset.New[*graph.Vertex[V, E]]()
	for _, v := range vertices {
		if _, err := forest.MakeSet(v); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: make set: %w", err)
		}
	}

	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b *graph.Edge[V, E]) int {
		return cmp.Compare(a.Element().Weight(), b.Element().Weight())
	})

	var (
		mst   []*graph.Edge[V, E]
		total int64
		limit = len(vertices) - 1
	)
	for _, e := range edges {
		if len(mst) >= limit {
			break
		}
		u, v, err := g.EndVertices(e)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: end vertices: %w", err)
		}
		joined, err := forest.Connected(u, v)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: find: %w", err)
		}
		if joined {
			continue
		}
		if _, err = forest.Union(u, v); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: union: %w", err)
		}
		mst = append(mst, e)
		total += e.Element().Weight()
	}

	return mst, total, nil
}
