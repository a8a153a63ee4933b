package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex BFS did not reach.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters that customize BFS execution.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Hooks installed by the typed With* constructors. Each holds a
	// function over *graph.Vertex[V, E] and is checked against the graph
	// when BFS starts.
	onEnqueue any
	onDequeue any
	onVisit   any
	filter    any

	err error
}

// DefaultOptions returns Options with no depth limit, no hooks and no
// neighbour filter.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: vertices farther than d edges are not discovered
//	d == 0: no depth limit
//	d < 0: invalid option -> ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback run when a vertex is first reached
// and queued, with its depth from the start.
func WithOnEnqueue[V, E any](fn func(v *graph.Vertex[V, E], depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run when a vertex leaves the queue.
func WithOnDequeue[V, E any](fn func(v *graph.Vertex[V, E], depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnVisit registers a callback run right after a vertex is dequeued,
// before its neighbours are expanded. An error stops the search.
func WithOnVisit[V, E any](fn func(v *graph.Vertex[V, E], depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
// A skipped neighbour may still be reached through another edge.
func WithFilterNeighbor[V, E any](fn func(curr, neighbor *graph.Vertex[V, E]) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks is the typed form of the callbacks held by Options.
type hooks[V, E any] struct {
	onEnqueue func(*graph.Vertex[V, E], int)
	onDequeue func(*graph.Vertex[V, E], int)
	onVisit   func(*graph.Vertex[V, E], int) error
	filter    func(curr, neighbor *graph.Vertex[V, E]) bool
}

// resolveHooks recovers the typed callbacks, rejecting any registered
// for a different vertex type.
func resolveHooks[V, E any](o Options) (hooks[V, E], error) {
	var h hooks[V, E]
	ok := true
	if o.onEnqueue != nil {
		h.onEnqueue, ok = o.onEnqueue.(func(*graph.Vertex[V, E], int))
	}
	if ok && o.onDequeue != nil {
		h.onDequeue, ok = o.onDequeue.(func(*graph.Vertex[V, E], int))
	}
	if ok && o.onVisit != nil {
		h.onVisit, ok = o.onVisit.(func(*graph.Vertex[V, E], int) error)
	}
	if ok && o.filter != nil {
		h.filter, ok = o.filter.(func(curr, neighbor *graph.Vertex[V, E]) bool)
	}
	if !ok {
		return h, fmt.Errorf("%w: hook does not match the graph's vertex type", ErrOptionViolation)
	}
	return h, nil
}

// Result holds the outcome of a BFS traversal.
type Result[V, E any] struct {
	// Discovery maps every reached vertex except the start to the edge
	// through which it was first discovered.
	Discovery map[*graph.Vertex[V, E]]*graph.Edge[V, E]

	// Order lists reached vertices in visit sequence.
	Order []*graph.Vertex[V, E]

	// Depth maps each reached vertex to its distance in edges from start.
	Depth map[*graph.Vertex[V, E]]int

	// Parent maps each reached vertex except the start to its predecessor.
	Parent map[*graph.Vertex[V, E]]*graph.Vertex[V, E]
}

// PathTo returns the discovery edges leading from the start vertex to
// dest, in travel order. The path to the start itself is empty.
func (r *Result[V, E]) PathTo(dest *graph.Vertex[V, E]) ([]*graph.Edge[V, E], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrNotReached
	}
	var path []*graph.Edge[V, E]
	for cur := dest; ; {
		e, ok := r.Discovery[cur]
		if !ok {
			break
		}
		path = append(path, e)
		cur = r.Parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
