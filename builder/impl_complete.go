package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
//
// Each unordered pair {i,j} with i<j is emitted once in lexicographic
// order; in a directed graph the reverse edge j→i is added right after.
func Complete(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		vs := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, vs[i], vs[j]); err != nil {
					return err
				}
				if g.IsDirected() {
					if err := addEdge(methodComplete, g, cfg, vs[j], vs[i]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
