package builder

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

type vertex = *graph.Vertex[string, graph.Weight]

// validateMin rejects a size parameter below min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// addVertices inserts n vertices named by cfg.idFn in index order.
func addVertices(g Graph, cfg builderConfig, n int) []vertex {
	vs := make([]vertex, n)
	for i := range vs {
		vs[i] = g.InsertVertex(cfg.idFn(i))
	}
	return vs
}

// addEdge inserts u→v with the next configured weight.
func addEdge(method string, g Graph, cfg builderConfig, u, v vertex) error {
	w := cfg.weight()
	if _, err := g.InsertEdge(u, v, graph.Weight(w)); err != nil {
		return fmt.Errorf("%s: InsertEdge(%s→%s, w=%d): %w", method, u.Element(), v.Element(), w, err)
	}
	return nil
}

// addMirrored inserts u→v and, in a directed graph, v→u.
func addMirrored(method string, g Graph, cfg builderConfig, u, v vertex) error {
	if err := addEdge(method, g, cfg, u, v); err != nil {
		return err
	}
	if g.IsDirected() {
		return addEdge(method, g, cfg, v, u)
	}
	return nil
}

// addChord is addMirrored that skips any orientation already present.
func addChord(method string, g Graph, cfg builderConfig, u, v vertex) error {
	for _, p := range [][2]vertex{{u, v}, {v, u}} {
		e, err := g.GetEdge(p[0], p[1])
		if err != nil {
			return fmt.Errorf("%s: GetEdge: %w", method, err)
		}
		if e == nil {
			if err = addEdge(method, g, cfg, p[0], p[1]); err != nil {
				return err
			}
		}
		if !g.IsDirected() {
			return nil
		}
	}
	return nil
}
