package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/dsa/graph"
)

// Infinity is the distance assigned to vertices not reachable from the
// start vertex.
const Infinity int64 = math.MaxInt64

var (
	// ErrNilGraph is returned if the graph is nil.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight is returned if any edge has a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNotReached is returned by PathTo when the destination is not
	// connected to the start through the tree.
	ErrNotReached = errors.New("dijkstra: vertex not reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a shortest-path run.
//
//   - ReturnPath: record, for every reached vertex, the edge that last
//     lowered its distance (Result.Prev).
//   - MaxDistance: vertices whose distance would exceed this cap are not
//     reached and keep Infinity. Default Infinity (no cap).
//   - InfEdgeThreshold: edges with weight ≥ this threshold are
//     impassable. Default Infinity (no obstacles).
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no predecessor map, no distance cap
// and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithReturnPath enables the predecessor map in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps explored distances. Panics with ErrBadMaxDistance
// if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// Result holds the outcome of ShortestPaths.
type Result[V, E any] struct {
	// Dist maps every vertex to its distance from the start, Infinity if
	// it was not reached.
	Dist map[*graph.Vertex[V, E]]int64

	// Prev maps every reached vertex except the start to the edge that
	// last lowered its distance. It is nil unless WithReturnPath is set,
	// and can be passed to PathTo as a tree.
	Prev map[*graph.Vertex[V, E]]*graph.Edge[V, E]
}

// add returns a+b for non-negative operands, saturating at Infinity.
func add(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}
	return a + b
}
