package dfs

import (
	"github.com/katalvlaran/dsa/graph"
)

// cycleFinder walks g looking for the first back edge.
type cycleFinder[V, E any] struct {
	graph  graph.Graph[V, E]
	state  map[*graph.Vertex[V, E]]int
	via    map[*graph.Vertex[V, E]]*graph.Edge[V, E] // tree edge into each vertex
	parent map[*graph.Vertex[V, E]]*graph.Vertex[V, E]
	cycle  []*graph.Edge[V, E]
}

// FindCycle returns the edges of one cycle in g, in travel order, or nil
// if g is acyclic.
//
// For directed graphs a cycle is closed by an edge into a Gray vertex.
// For undirected graphs any non-tree edge to an already discovered
// vertex closes a cycle; the edge that discovered the current vertex is
// not counted.
func FindCycle[V, E any](g graph.Graph[V, E]) ([]*graph.Edge[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	f := &cycleFinder[V, E]{
		graph:  g,
		state:  make(map[*graph.Vertex[V, E]]int, n),
		via:    make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], n),
		parent: make(map[*graph.Vertex[V, E]]*graph.Vertex[V, E], n),
	}
	for _, v := range g.Vertices() {
		if f.state[v] != White {
			continue
		}
		found, err := f.visit(v)
		if err != nil {
			return nil, err
		}
		if found {
			return f.cycle, nil
		}
	}

	return nil, nil
}

// HasCycle reports whether g contains a cycle.
func HasCycle[V, E any](g graph.Graph[V, E]) (bool, error) {
	c, err := FindCycle(g)
	return c != nil, err
}

func (f *cycleFinder[V, E]) visit(u *graph.Vertex[V, E]) (bool, error) {
	f.state[u] = Gray
	edges, err := f.graph.OutgoingEdges(u)
	if err != nil {
		return false, err
	}
	directed := f.graph.IsDirected()
	for _, e := range edges {
		if !directed && e == f.via[u] {
			continue
		}
		v, err := f.graph.Opposite(u, e)
		if err != nil {
			return false, err
		}
		switch {
		case f.state[v] == White:
			f.via[v] = e
			f.parent[v] = u
			found, err := f.visit(v)
			if found || err != nil {
				return found, err
			}
		case f.state[v] == Gray || !directed:
			f.close(u, v, e)
			return true, nil
		}
	}
	f.state[u] = Black

	return false, nil
}

// close records the cycle v ~> u -> v formed by the back edge e = (u, v).
func (f *cycleFinder[V, E]) close(u, v *graph.Vertex[V, E], e *graph.Edge[V, E]) {
	var rev []*graph.Edge[V, E]
	for cur := u; cur != v; cur = f.parent[cur] {
		rev = append(rev, f.via[cur])
	}
	f.cycle = make([]*graph.Edge[V, E], 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		f.cycle = append(f.cycle, rev[i])
	}
	f.cycle = append(f.cycle, e)
}
