package graph

import "container/list"

// registry keeps the vertex and edge lists shared by both representations.
type registry[V, E any] struct {
	directed bool
	vertices *list.List
	edges    *list.List
	nextSeq  uint64
}

func newRegistry[V, E any](c config) registry[V, E] {
	return registry[V, E]{directed: c.directed, vertices: list.New(), edges: list.New()}
}

func (r *registry[V, E]) IsDirected() bool { return r.directed }

func (r *registry[V, E]) NumVertices() int { return r.vertices.Len() }

func (r *registry[V, E]) NumEdges() int { return r.edges.Len() }

func (r *registry[V, E]) Vertices() []*Vertex[V, E] {
	out := make([]*Vertex[V, E], 0, r.vertices.Len())
	for el := r.vertices.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Vertex[V, E]))
	}
	return out
}

func (r *registry[V, E]) Edges() []*Edge[V, E] {
	out := make([]*Edge[V, E], 0, r.edges.Len())
	for el := r.edges.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Edge[V, E]))
	}
	return out
}

func (r *registry[V, E]) addVertex(owner any, v *Vertex[V, E]) {
	v.owner = owner
	v.pos = r.vertices.PushBack(v)
}

func (r *registry[V, E]) addEdge(owner any, e *Edge[V, E]) {
	e.owner = owner
	e.seq = r.nextSeq
	r.nextSeq++
	e.pos = r.edges.PushBack(e)
}

func (r *registry[V, E]) dropVertex(v *Vertex[V, E]) {
	r.vertices.Remove(v.pos)
	v.owner, v.pos = nil, nil
}

func (r *registry[V, E]) dropEdge(e *Edge[V, E]) {
	r.edges.Remove(e.pos)
	e.owner, e.pos = nil, nil
}
