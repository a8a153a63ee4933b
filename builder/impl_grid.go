package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour grid.
// Vertex (r,c) has index r*cols+c; edges point right and down.
func Grid(rows, cols int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		vs := addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := vs[r*cols+c]
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, vs[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, vs[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
