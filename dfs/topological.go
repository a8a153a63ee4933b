package dfs

import (
	"github.com/katalvlaran/dsa/graph"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V, E any] struct {
	graph graph.Graph[V, E]
	state map[*graph.Vertex[V, E]]int // White, Gray or Black
	order []*graph.Vertex[V, E]       // post-order
}

// TopologicalSort computes an ordering of all vertices in the directed
// graph g such that for every edge u→v, u appears before v.
//
// Roots are tried in graph order and edges are followed in the order the
// graph reports them, so the result is deterministic.
//
// Complexity: O(V+E) time, O(V) memory.
func TopologicalSort[V, E any](g graph.Graph[V, E]) ([]*graph.Vertex[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsDirected() {
		return nil, ErrNotDirected
	}

	verts := g.Vertices()
	s := &topoSorter[V, E]{
		graph: g,
		state: make(map[*graph.Vertex[V, E]]int, len(verts)),
		order: make([]*graph.Vertex[V, E], 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit colours u Gray, explores its successors and appends it to the
// post-order once it turns Black.
func (s *topoSorter[V, E]) visit(u *graph.Vertex[V, E]) error {
	s.state[u] = Gray
	edges, err := s.graph.OutgoingEdges(u)
	if err != nil {
		return err
	}
	for _, e := range edges {
		v, err := s.graph.Opposite(u, e)
		if err != nil {
			return err
		}
		switch s.state[v] {
		case Gray:
			return ErrCycleDetected
		case White:
			if err = s.visit(v); err != nil {
				return err
			}
		}
	}
	s.state[u] = Black
	s.order = append(s.order, u)

	return nil
}
