package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
	"github.com/katalvlaran/dsa/pq"
)

// runner holds the state of one Dijkstra execution.
type runner[V any, E graph.Weighted] struct {
	g       graph.Graph[V, E]
	opts    Options
	dist    map[*graph.Vertex[V, E]]int64
	prev    map[*graph.Vertex[V, E]]*graph.Edge[V, E]
	known   map[*graph.Vertex[V, E]]bool
	entries map[*graph.Vertex[V, E]]*pq.Entry[int64, *graph.Vertex[V, E]]
	queue   *pq.AdaptableHeap[int64, *graph.Vertex[V, E]]
}

// Dijkstra returns the shortest distance from start to every vertex of g.
// Vertices that cannot be reached map to Infinity.
//
// All edge weights are checked up front; a negative weight fails with
// ErrNegativeWeight before any work is done.
func Dijkstra[V any, E graph.Weighted](g graph.Graph[V, E], start *graph.Vertex[V, E], opts ...Option) (map[*graph.Vertex[V, E]]int64, error) {
	res, err := ShortestPaths(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// ShortestPaths runs Dijkstra from start and returns the distances
// together with the predecessor edges when WithReturnPath is set.
func ShortestPaths[V any, E graph.Weighted](g graph.Graph[V, E], start *graph.Vertex[V, E], opts ...Option) (*Result[V, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if o.InfEdgeThreshold <= 0 {
		return nil, ErrBadInfThreshold
	}
	if _, err := g.OutDegree(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start vertex: %w", err)
	}
	for _, e := range g.Edges() {
		if w := e.Element().Weight(); w < 0 {
			return nil, fmt.Errorf("%w: weight=%d", ErrNegativeWeight, w)
		}
	}

	n := g.NumVertices()
	r := &runner[V, E]{
		g:       g,
		opts:    o,
		dist:    make(map[*graph.Vertex[V, E]]int64, n),
		known:   make(map[*graph.Vertex[V, E]]bool, n),
		entries: make(map[*graph.Vertex[V, E]]*pq.Entry[int64, *graph.Vertex[V, E]], n),
		queue:   pq.NewAdaptable[int64, *graph.Vertex[V, E]](),
	}
	if o.ReturnPath {
		r.prev = make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], n)
	}
	for _, v := range g.Vertices() {
		d := Infinity
		if v == start {
			d = 0
		}
		r.dist[v] = d
		r.entries[v] = r.queue.Insert(d, v)
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[V, E]{Dist: r.dist, Prev: r.prev}, nil
}

// process drains the queue, finalising one vertex per iteration.
func (r *runner[V, E]) process() error {
	for {
		entry, ok := r.queue.DeleteMin()
		if !ok {
			return nil
		}
		u := entry.Value()
		r.known[u] = true
		if entry.Key() == Infinity {
			// everything left in the queue is unreachable
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax lowers the tentative distance of every unknown neighbour of u,
// skipping impassable edges and distances beyond the cap.
func (r *runner[V, E]) relax(u *graph.Vertex[V, E]) error {
	edges, err := r.g.OutgoingEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: outgoing edges: %w", err)
	}
	for _, e := range edges {
		z, err := r.g.Opposite(u, e)
		if err != nil {
			return fmt.Errorf("dijkstra: opposite: %w", err)
		}
		if r.known[z] {
			continue
		}
		w := e.Element().Weight()
		if w >= r.opts.InfEdgeThreshold {
			continue
		}
		if d := add(r.dist[u], w); d < r.dist[z] && d <= r.opts.MaxDistance {
			r.dist[z] = d
			if r.prev != nil {
				r.prev[z] = e
			}
			if err = r.queue.ReplaceKey(r.entries[z], d); err != nil {
				return fmt.Errorf("dijkstra: replace key: %w", err)
			}
		}
	}
	return nil
}
