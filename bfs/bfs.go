package bfs

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V, E any] struct {
	v     *graph.Vertex[V, E]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V, E any] struct {
	graph graph.Graph[V, E]
	opts  Options
	hooks hooks[V, E]
	queue []queueItem[V, E]
	res   *Result[V, E]
}

// BFS runs breadth-first search on g from start.
//
// On an OnVisit error the partially filled Result is returned alongside
// the error.
func BFS[V, E any](g graph.Graph[V, E], start *graph.Vertex[V, E], opts ...Option) (*Result[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolveHooks[V, E](o)
	if err != nil {
		return nil, err
	}
	if _, err = g.OutDegree(start); err != nil {
		return nil, fmt.Errorf("bfs: start vertex: %w", err)
	}

	n := g.NumVertices()
	w := &walker[V, E]{
		graph: g,
		opts:  o,
		hooks: h,
		queue: make([]queueItem[V, E], 0, n),
		res: &Result[V, E]{
			Discovery: make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], n),
			Order:     make([]*graph.Vertex[V, E], 0, n),
			Depth:     make(map[*graph.Vertex[V, E]]int, n),
			Parent:    make(map[*graph.Vertex[V, E]]*graph.Vertex[V, E], n),
		},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, calls OnEnqueue and appends it to
// the queue.
func (w *walker[V, E]) enqueue(v *graph.Vertex[V, E], d int) {
	w.res.Depth[v] = d
	w.res.Order = append(w.res.Order, v)
	if w.hooks.onEnqueue != nil {
		w.hooks.onEnqueue(v, d)
	}
	w.queue = append(w.queue, queueItem[V, E]{v: v, depth: d})
}

// dequeue pops the first item and calls OnDequeue.
func (w *walker[V, E]) dequeue() queueItem[V, E] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	if w.hooks.onDequeue != nil {
		w.hooks.onDequeue(item.v, item.depth)
	}
	return item
}

// loop processes the queue until it drains.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if w.hooks.onVisit != nil {
			if err := w.hooks.onVisit(item.v, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v.Element(), err)
			}
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		edges, err := w.graph.OutgoingEdges(item.v)
		if err != nil {
			return fmt.Errorf("bfs: outgoing edges: %w", err)
		}
		for _, e := range edges {
			next, err := w.graph.Opposite(item.v, e)
			if err != nil {
				return fmt.Errorf("bfs: opposite: %w", err)
			}
			if _, seen := w.res.Depth[next]; seen {
				continue
			}
			if w.hooks.filter != nil && !w.hooks.filter(item.v, next) {
				continue
			}
			w.res.Discovery[next] = e
			w.res.Parent[next] = item.v
			w.enqueue(next, item.depth+1)
		}
	}
	return nil
}
