package graph

import (
	"container/list"
	"errors"
)

var (
	// ErrForeignVertex indicates a nil vertex, a vertex of another graph,
	// or a vertex already removed.
	ErrForeignVertex = errors.New("graph: vertex does not belong to this graph")

	// ErrForeignEdge indicates a nil edge, an edge of another graph, or an
	// edge already removed.
	ErrForeignEdge = errors.New("graph: edge does not belong to this graph")

	// ErrEdgeExists indicates an attempt to insert a second edge between
	// the same ordered pair of vertices.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrNotIncident indicates the vertex is not an endpoint of the edge.
	ErrNotIncident = errors.New("graph: vertex is not incident to edge")
)

// Weighted is implemented by edge payloads that carry a cost.
type Weighted interface {
	Weight() int64
}

// Weight is an edge payload holding only a cost.
type Weight int64

// Weight returns w as an int64.
func (w Weight) Weight() int64 { return int64(w) }

// Vertex is a vertex handle holding a payload of type V.
type Vertex[V, E any] struct {
	data  V
	owner any           // graph that created the vertex; nil once removed
	pos   *list.Element // position in the owner's vertex list
	index int           // matrix slot

	outgoing map[*Vertex[V, E]]*Edge[V, E]
	incoming map[*Vertex[V, E]]*Edge[V, E] // aliases outgoing when undirected
}

// Element returns the vertex payload.
func (v *Vertex[V, E]) Element() V { return v.data }

// Edge is an edge handle holding a payload of type E.
type Edge[V, E any] struct {
	data   E
	origin *Vertex[V, E]
	dest   *Vertex[V, E]
	owner  any
	pos    *list.Element
	seq    uint64 // insertion sequence, orders incident edges
}

// Element returns the edge payload.
func (e *Edge[V, E]) Element() E { return e.data }

// Graph is the contract shared by both representations.
type Graph[V, E any] interface {
	IsDirected() bool
	NumVertices() int
	// Vertices returns the vertices in insertion order.
	Vertices() []*Vertex[V, E]
	NumEdges() int
	// Edges returns the edges in insertion order.
	Edges() []*Edge[V, E]
	// GetEdge returns the edge from u to v, or nil if there is none.
	GetEdge(u, v *Vertex[V, E]) (*Edge[V, E], error)
	// EndVertices returns the origin and destination of e.
	EndVertices(e *Edge[V, E]) (*Vertex[V, E], *Vertex[V, E], error)
	// Opposite returns the endpoint of e that is not v.
	Opposite(v *Vertex[V, E], e *Edge[V, E]) (*Vertex[V, E], error)
	OutDegree(v *Vertex[V, E]) (int, error)
	InDegree(v *Vertex[V, E]) (int, error)
	OutgoingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error)
	IncomingEdges(v *Vertex[V, E]) ([]*Edge[V, E], error)
	InsertVertex(data V) *Vertex[V, E]
	// InsertEdge adds an edge from u to v; ErrEdgeExists if one is present.
	InsertEdge(u, v *Vertex[V, E], data E) (*Edge[V, E], error)
	// RemoveVertex deletes v together with its incident edges.
	RemoveVertex(v *Vertex[V, E]) (V, error)
	RemoveEdge(e *Edge[V, E]) (E, error)
}

// Option configures a graph at construction.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes the graph directed (true) or undirected (false, the
// default).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
