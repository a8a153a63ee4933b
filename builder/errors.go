package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnsupportedGraphMode indicates a constructor that cannot build
	// into the graph's mode (e.g. RandomRegular on a directed graph).
	ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

	// ErrOptionViolation indicates an unknown variant or solid name.
	ErrOptionViolation = errors.New("builder: invalid parameter")

	// ErrConstructFailed wraps failures of the build pipeline itself.
	ErrConstructFailed = errors.New("builder: construction failed")
)
