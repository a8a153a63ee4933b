package graph

import (
	"fmt"
	"slices"
)

// AdjacencyMapGraph stores, for every vertex, maps from neighbour to the
// connecting edge.
type AdjacencyMapGraph[V, E any] struct {
	registry[V, E]
}

var _ Graph[string, Weight] = (*AdjacencyMapGraph[string, Weight])(nil)

// NewAdjacencyMap returns an empty graph, undirected unless WithDirected(true).
func NewAdjacencyMap[V, E any](opts ...Option) *AdjacencyMapGraph[V, E] {
	return &AdjacencyMapGraph[V, E]{registry: newRegistry[V, E](newConfig(opts))}
}

func (g *AdjacencyMapGraph[V, E]) validateVertex(v *Vertex[V, E]) error {
	if v == nil || v.owner != any(g) {
		return ErrForeignVertex
	}
	return nil
}

func (g *AdjacencyMapGraph[V, E]) validateEdge(e *Edge[V, E]) error {
	if e == nil || e.owner != any(g) {
		return ErrForeignEdge
	}
	return nil
}

// InsertVertex adds a vertex holding data.
func (g *AdjacencyMapGraph[V, E]) InsertVertex(data V) *Vertex[V, E] {
	v := &Vertex[V, E]{data: data, index: -1}
	v.outgoing = make(map[*Vertex[V, E]]*Edge[V, E])
	if g.directed {
		v.incoming = make(map[*Vertex[V, E]]*Edge[V, E])
	} else {
		v.incoming = v.outgoing
	}
	g.addVertex(g, v)
	return v
}

// GetEdge returns the edge from u to v, or nil.
func (g *AdjacencyMapGraph[V, E]) GetEdge(u, v *Vertex[V, E]) (*Edge[V, E], error) {
	if err := g.validateVertex(u); err != nil {
		return nil, err
	}
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return u.outgoing[v], nil
}

// EndVertices returns the origin and destination of e.
func (g *AdjacencyMapGraph[V, E]) EndVertices(e *Edge[V, E]) (*Vertex[V, E], *Vertex[V, E], error) {
	if err := g.validateEdge(e); err != nil {
		return nil, nil, err
	}
	return e.origin, e.dest, nil
}

// Opposite returns the endpoint of e that is not v.
func (g *AdjacencyMapGraph[V, E]) Opposite(v *Vertex[V, E], e *Edge[V, E]) (*Vertex[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	if err := g.validateEdge(e); err != nil {
		return nil, err
	}
	return opposite(v, e)
}

func opposite[V, E any](v *Vertex[V, E], e *Edge[V, E]) (*Vertex[V, E], error) {
	switch v {
	case e.origin:
		return e.dest, nil
	case e.dest:
		return e.origin, nil
	}
	return nil, ErrNotIncident
}

// OutDegree returns the number of edges leaving v.
func (g *AdjacencyMapGraph[V, E]) OutDegree(v *Vertex[V, E]) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}
	return len(v.outgoing), nil
}

// InDegree returns the number of edges entering v.
func (g *AdjacencyMapGraph[V, E]) InDegree(v *Vertex[V, E]) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}
	return len(v.incoming), nil
}

// OutgoingEdges returns the edges leaving v in insertion order.
func (g *AdjacencyMapGraph[V, E]) OutgoingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return sortedEdges(v.outgoing), nil
}

// IncomingEdges returns the edges entering v in insertion order.
func (g *AdjacencyMapGraph[V, E]) IncomingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return sortedEdges(v.incoming), nil
}

func sortedEdges[V, E any](m map[*Vertex[V, E]]*Edge[V, E]) []*Edge[V, E] {
	out := make([]*Edge[V, E], 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	slices.SortFunc(out, bySeq[V, E])
	return out
}

// InsertEdge adds an edge from u to v holding data.
func (g *AdjacencyMapGraph[V, E]) InsertEdge(u, v *Vertex[V, E], data E) (*Edge[V, E], error) {
	existing, err := g.GetEdge(u, v)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %v -> %v", ErrEdgeExists, u.data, v.data)
	}
	e := &Edge[V, E]{data: data, origin: u, dest: v}
	g.addEdge(g, e)
	u.outgoing[v] = e
	v.incoming[u] = e
	return e, nil
}

// RemoveVertex deletes v and every edge incident to it.
func (g *AdjacencyMapGraph[V, E]) RemoveVertex(v *Vertex[V, E]) (V, error) {
	if err := g.validateVertex(v); err != nil {
		var zero V
		return zero, err
	}
	incident := sortedEdges(v.outgoing)
	if g.directed {
		incident = append(incident, sortedEdges(v.incoming)...)
	}
	for _, e := range incident {
		if e.owner != nil { // a directed self-loop is listed twice
			g.unlink(e)
		}
	}
	g.dropVertex(v)
	return v.data, nil
}

// RemoveEdge deletes e.
func (g *AdjacencyMapGraph[V, E]) RemoveEdge(e *Edge[V, E]) (E, error) {
	if err := g.validateEdge(e); err != nil {
		var zero E
		return zero, err
	}
	g.unlink(e)
	return e.data, nil
}

func (g *AdjacencyMapGraph[V, E]) unlink(e *Edge[V, E]) {
	delete(e.origin.outgoing, e.dest)
	delete(e.dest.incoming, e.origin)
	g.dropEdge(e)
}
