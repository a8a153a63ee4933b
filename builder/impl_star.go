package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center 0 and
// leaves 1..n-1, edges oriented center→leaf.
func Star(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		vs := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, vs[0], vs[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
