package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a rim cycle over
// vertices 1..n-1 plus spokes from hub 0 to every rim vertex.
// Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		_, err := wheel(methodWheel, g, cfg, n)
		return err
	}
}

// wheel inserts W_n and returns its rim vertices in ring order.
func wheel(method string, g Graph, cfg builderConfig, n int) ([]vertex, error) {
	if err := validateMin(method, "n", n, minWheelNodes); err != nil {
		return nil, err
	}
	vs := addVertices(g, cfg, n)
	rim := vs[1:]
	for i := range rim {
		if err := addEdge(method, g, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
			return nil, err
		}
	}
	for _, v := range rim {
		if err := addEdge(method, g, cfg, vs[0], v); err != nil {
			return nil, err
		}
	}
	return rim, nil
}
