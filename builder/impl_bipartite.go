package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. The left part
// takes indices 0..n1-1 and the right part n1..n1+n2-1; every pair
// (left i, right j) is emitted with i outer and j inner, mirrored in a
// directed graph.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		vs := addVertices(g, cfg, n1+n2)
		left, right := vs[:n1], vs[n1:]
		for _, u := range left {
			for _, v := range right {
				if err := addMirrored(methodCompleteBipartite, g, cfg, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
