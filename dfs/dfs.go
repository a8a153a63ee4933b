package dfs

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// walker carries the traversal state shared by recursive calls.
type walker[V, E any] struct {
	graph   graph.Graph[V, E]
	opts    Options
	onVisit func(*graph.Vertex[V, E]) error
	onExit  func(*graph.Vertex[V, E]) error
	res     *Result[V, E]
}

// DFS performs a depth-first traversal of g from start.
//
// Outgoing edges are followed in the order the graph reports them. A
// vertex is discovered through the first edge that reaches it. With
// WithFullTraversal, start may be nil and every component is covered.
//
// On a hook error the partially filled Result is returned alongside the
// error.
func DFS[V, E any](g graph.Graph[V, E], start *graph.Vertex[V, E], opts ...Option) (*Result[V, E], error) {
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
	onVisit, err := hook[V, E]("OnVisit", o.onVisit)
	if err != nil {
		return nil, err
	}
	onExit, err := hook[V, E]("OnExit", o.onExit)
	if err != nil {
		return nil, err
	}
	if start != nil || !o.FullTraversal {
		if _, err := g.OutDegree(start); err != nil {
			return nil, fmt.Errorf("dfs: start vertex: %w", err)
		}
	}

	n := g.NumVertices()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		onVisit: onVisit,
		onExit:  onExit,
		res: &Result[V, E]{
			Discovery: make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], n),
			Preorder:  make([]*graph.Vertex[V, E], 0, n),
			Postorder: make([]*graph.Vertex[V, E], 0, n),
			Depth:     make(map[*graph.Vertex[V, E]]int, n),
			Parent:    make(map[*graph.Vertex[V, E]]*graph.Vertex[V, E], n),
		},
	}

	if start != nil {
		if err := w.traverse(start, 0); err != nil {
			return w.res, err
		}
	}
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.res.Visited(v) {
				continue
			}
			if err := w.traverse(v, 0); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// traverse visits u at the given depth and recurses into undiscovered
// neighbours.
func (w *walker[V, E]) traverse(u *graph.Vertex[V, E], depth int) error {
	w.res.Depth[u] = depth
	w.res.Preorder = append(w.res.Preorder, u)
	if w.onVisit != nil {
		if err := w.onVisit(u); err != nil {
			return fmt.Errorf("dfs: OnVisit hook: %w", err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, err := w.graph.OutgoingEdges(u)
		if err != nil {
			return fmt.Errorf("dfs: outgoing edges: %w", err)
		}
		for _, e := range edges {
			v, err := w.graph.Opposite(u, e)
			if err != nil {
				return fmt.Errorf("dfs: opposite: %w", err)
			}
			if w.res.Visited(v) {
				continue
			}
			w.res.Discovery[v] = e
			w.res.Parent[v] = u
			if err = w.traverse(v, depth+1); err != nil {
				return err
			}
		}
	}

	if w.onExit != nil {
		if err := w.onExit(u); err != nil {
			return fmt.Errorf("dfs: OnExit hook: %w", err)
		}
	}
	w.res.Postorder = append(w.res.Postorder, u)

	return nil
}
