package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n:
// 0→1→...→n-1→0.
func Cycle(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		_, err := cycle(methodCycle, g, cfg, n)
		return err
	}
}

// cycle inserts C_n and returns its vertices in ring order.
func cycle(method string, g Graph, cfg builderConfig, n int) ([]vertex, error) {
	if err := validateMin(method, "n", n, minCycleNodes); err != nil {
		return nil, err
	}
	vs := addVertices(g, cfg, n)
	for i := 0; i < n; i++ {
		if err := addEdge(method, g, cfg, vs[i], vs[(i+1)%n]); err != nil {
			return nil, err
		}
	}
	return vs, nil
}
