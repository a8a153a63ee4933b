package graph

import (
	"cmp"
	"fmt"
	"slices"
)

// AdjacencyMatrixGraph stores edges in a square matrix indexed by vertex
// slot. A removed vertex leaves its row and column empty; slots are never
// reused.
type AdjacencyMatrixGraph[V, E any] struct {
	registry[V, E]
	matrix [][]*Edge[V, E]
}

var _ Graph[string, Weight] = (*AdjacencyMatrixGraph[string, Weight])(nil)

// NewAdjacencyMatrix returns an empty graph, undirected unless
// WithDirected(true).
func NewAdjacencyMatrix[V, E any](opts ...Option) *AdjacencyMatrixGraph[V, E] {
	return &AdjacencyMatrixGraph[V, E]{registry: newRegistry[V, E](newConfig(opts))}
}

func (g *AdjacencyMatrixGraph[V, E]) validateVertex(v *Vertex[V, E]) error {
	if v == nil || v.owner != any(g) {
		return ErrForeignVertex
	}
	return nil
}

func (g *AdjacencyMatrixGraph[V, E]) validateEdge(e *Edge[V, E]) error {
	if e == nil || e.owner != any(g) {
		return ErrForeignEdge
	}
	return nil
}

// InsertVertex adds a vertex holding data and grows the matrix by one row
// and one column.
func (g *AdjacencyMatrixGraph[V, E]) InsertVertex(data V) *Vertex[V, E] {
	v := &Vertex[V, E]{data: data, index: len(g.matrix)}
	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i], nil)
	}
	g.matrix = append(g.matrix, make([]*Edge[V, E], len(g.matrix)+1))
	g.addVertex(g, v)
	return v
}

// GetEdge returns the edge from u to v, or nil.
func (g *AdjacencyMatrixGraph[V, E]) GetEdge(u, v *Vertex[V, E]) (*Edge[V, E], error) {
	if err := g.validateVertex(u); err != nil {
		return nil, err
	}
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return g.matrix[u.index][v.index], nil
}

// EndVertices returns the origin and destination of e.
func (g *AdjacencyMatrixGraph[V, E]) EndVertices(e *Edge[V, E]) (*Vertex[V, E], *Vertex[V, E], error) {
	if err := g.validateEdge(e); err != nil {
		return nil, nil, err
	}
	return e.origin, e.dest, nil
}

// Opposite returns the endpoint of e that is not v.
func (g *AdjacencyMatrixGraph[V, E]) Opposite(v *Vertex[V, E], e *Edge[V, E]) (*Vertex[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	if err := g.validateEdge(e); err != nil {
		return nil, err
	}
	return opposite(v, e)
}

// row collects the non-nil cells of row i in insertion order.
func (g *AdjacencyMatrixGraph[V, E]) row(i int) []*Edge[V, E] {
	var out []*Edge[V, E]
	for _, e := range g.matrix[i] {
		if e != nil {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, bySeq[V, E])
	return out
}

// column collects the non-nil cells of column j in insertion order.
func (g *AdjacencyMatrixGraph[V, E]) column(j int) []*Edge[V, E] {
	var out []*Edge[V, E]
	for i := range g.matrix {
		if e := g.matrix[i][j]; e != nil {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, bySeq[V, E])
	return out
}

// OutDegree returns the number of edges leaving v.
func (g *AdjacencyMatrixGraph[V, E]) OutDegree(v *Vertex[V, E]) (int, error) {
	es, err := g.OutgoingEdges(v)
	return len(es), err
}

// InDegree returns the number of edges entering v.
func (g *AdjacencyMatrixGraph[V, E]) InDegree(v *Vertex[V, E]) (int, error) {
	es, err := g.IncomingEdges(v)
	return len(es), err
}

// OutgoingEdges returns the edges leaving v in insertion order.
func (g *AdjacencyMatrixGraph[V, E]) OutgoingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return g.row(v.index), nil
}

// IncomingEdges returns the edges entering v in insertion order.
func (g *AdjacencyMatrixGraph[V, E]) IncomingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	return g.column(v.index), nil
}

// InsertEdge adds an edge from u to v holding data. An undirected edge
// fills both symmetric cells.
func (g *AdjacencyMatrixGraph[V, E]) InsertEdge(u, v *Vertex[V, E], data E) (*Edge[V, E], error) {
	existing, err := g.GetEdge(u, v)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %v -> %v", ErrEdgeExists, u.data, v.data)
	}
	e := &Edge[V, E]{data: data, origin: u, dest: v}
	g.addEdge(g, e)
	g.matrix[u.index][v.index] = e
	if !g.directed {
		g.matrix[v.index][u.index] = e
	}
	return e, nil
}

// RemoveVertex deletes v and every edge incident to it.
func (g *AdjacencyMatrixGraph[V, E]) RemoveVertex(v *Vertex[V, E]) (V, error) {
	if err := g.validateVertex(v); err != nil {
		var zero V
		return zero, err
	}
	for _, e := range append(g.row(v.index), g.column(v.index)...) {
		if e.owner != nil {
			g.unlink(e)
		}
	}
	g.dropVertex(v)
	return v.data, nil
}

// RemoveEdge deletes e.
func (g *AdjacencyMatrixGraph[V, E]) RemoveEdge(e *Edge[V, E]) (E, error) {
	if err := g.validateEdge(e); err != nil {
		var zero E
		return zero, err
	}
	g.unlink(e)
	return e.data, nil
}

func (g *AdjacencyMatrixGraph[V, E]) unlink(e *Edge[V, E]) {
	i, j := e.origin.index, e.dest.index
	g.matrix[i][j] = nil
	if !g.directed {
		g.matrix[j][i] = nil
	}
	g.dropEdge(e)
}

func bySeq[V, E any](a, b *Edge[V, E]) int { return cmp.Compare(a.seq, b.seq) }
