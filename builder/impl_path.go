package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n: 0→1→...→n-1.
func Path(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		vs := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, vs[i-1], vs[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
