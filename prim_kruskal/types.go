package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

var (
	// ErrNilGraph is returned when the graph is nil.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrDirected is returned for directed graphs; MST requires undirected.
	ErrDirected = errors.New("prim_kruskal: MST requires an undirected graph")

	// ErrUnknownMethod is returned by Compute for an unsupported Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method selects the MST algorithm used by Compute.
type Method string

const (
	// MethodPrim selects Prim-Jarnik growth from the first vertex.
	MethodPrim Method = "prim"

	// MethodKruskal selects Kruskal's sort-and-union algorithm.
	MethodKruskal Method = "kruskal"
)

// Options configures Compute.
type Options struct {
	Method Method
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options using Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute returns a minimum spanning forest of g and its total weight
// using the configured method.
func Compute[V any, E graph.Weighted](g graph.Graph[V, E], opts ...Option) ([]*graph.Edge[V, E], int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return PrimJarnik(g)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate checks the preconditions shared by both algorithms.
func validate[V, E any](g graph.Graph[V, E]) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.IsDirected() {
		return ErrDirected
	}
	return nil
}
