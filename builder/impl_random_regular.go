package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor that builds an undirected simple
// d-regular graph on n vertices by stub matching: every vertex
// contributes d stubs, the stubs are shuffled with the configured RNG
// and paired off. A pairing with a loop or a repeated pair is discarded
// and reshuffled, up to a fixed number of attempts.
//
// Requires an undirected graph, 0 ≤ d < n, n·d even and an RNG.
func RandomRegular(n, d int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if g.IsDirected() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil && d > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		pairs, ok := matchStubs(cfg, stubs)
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		vs := addVertices(g, cfg, n)
		for _, p := range pairs {
			if err := addEdge(methodRandomRegular, g, cfg, vs[p[0]], vs[p[1]]); err != nil {
				return err
			}
		}
		return nil
	}
}

// matchStubs shuffles stubs until consecutive pairs form a simple graph.
func matchStubs(cfg builderConfig, stubs []int) ([][2]int, bool) {
	if len(stubs) == 0 {
		return nil, true
	}
	pairs := make([][2]int, len(stubs)/2)
	seen := make(map[[2]int]struct{}, len(pairs))
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		clear(seen)
		valid := true
		for i := range pairs {
			u, v := stubs[2*i], stubs[2*i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
			pairs[i] = key
		}
		if valid {
			return pairs, true
		}
	}
	return nil, false
}
