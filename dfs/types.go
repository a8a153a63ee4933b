package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all its descendants fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNotDirected is returned by TopologicalSort for undirected graphs.
	ErrNotDirected = errors.New("dfs: graph is not directed")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotReached is returned by PathTo for a vertex DFS did not reach.
	ErrNotReached = errors.New("dfs: vertex not reached")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts the search from every unvisited vertex,
	// covering disconnected components.
	FullTraversal bool

	// onVisit and onExit hold typed hooks, func(*graph.Vertex[V, E]) error,
	// checked against the graph when DFS starts.
	onVisit any
	onExit  any

	err error
}

// DefaultOptions returns Options with no hooks, no depth limit and
// single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook. Returning an error aborts
// the traversal. The vertex types of fn must match the traversed graph,
// otherwise DFS fails with ErrOptionViolation.
func WithOnVisit[V, E any](fn func(v *graph.Vertex[V, E]) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit installs fn as a post-order hook, called once all
// descendants of a vertex have been explored.
func WithOnExit[V, E any](fn func(v *graph.Vertex[V, E]) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// hook recovers a typed hook stored by WithOnVisit or WithOnExit.
func hook[V, E any](name string, h any) (func(*graph.Vertex[V, E]) error, error) {
	if h == nil {
		return nil, nil
	}
	fn, ok := h.(func(*graph.Vertex[V, E]) error)
	if !ok {
		return nil, fmt.Errorf("%w: %s hook type %T does not match the graph", ErrOptionViolation, name, h)
	}
	return fn, nil
}

// WithMaxDepth limits traversal depth. A negative limit is rejected with
// ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal: after the start vertex is
// exhausted, DFS restarts from each unvisited vertex in graph order.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V, E any] struct {
	// Discovery maps every reached vertex, except tree roots, to the edge
	// through which it was first discovered.
	Discovery map[*graph.Vertex[V, E]]*graph.Edge[V, E]

	// Preorder lists vertices in discovery sequence.
	Preorder []*graph.Vertex[V, E]

	// Postorder lists vertices in the sequence they finished.
	Postorder []*graph.Vertex[V, E]

	// Depth maps each reached vertex to its depth in its DFS tree.
	Depth map[*graph.Vertex[V, E]]int

	// Parent maps each reached vertex, except tree roots, to the vertex
	// from which it was discovered.
	Parent map[*graph.Vertex[V, E]]*graph.Vertex[V, E]
}

// Visited reports whether v was reached.
func (r *Result[V, E]) Visited(v *graph.Vertex[V, E]) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo returns the tree edges leading from the root of dest's DFS tree
// to dest, in travel order.
func (r *Result[V, E]) PathTo(dest *graph.Vertex[V, E]) ([]*graph.Edge[V, E], error) {
	if !r.Visited(dest) {
		return nil, ErrNotReached
	}
	var path []*graph.Edge[V, E]
	for cur := dest; ; cur = r.Parent[cur] {
		e, ok := r.Discovery[cur]
		if !ok {
			break
		}
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
