package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for the Erdős–Rényi model G(n, p).
//
// Undirected graphs consider each pair i<j once; directed graphs
// consider every ordered pair i≠j. Each candidate is kept with
// probability p. p of 0 or 1 needs no RNG; anything in between requires
// WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		vs := addVertices(g, cfg, n)
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		directed := g.IsDirected()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
