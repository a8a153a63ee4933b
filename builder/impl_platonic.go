package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the shell of the named
// solid over indices 0..V-1, mirroring every edge in a directed graph.
// With withCenter a hub vertex (index V) is added after the shell and
// joined to every shell vertex in index order.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		size := n
		if withCenter {
			size++
		}
		vs := addVertices(g, cfg, size)
		for _, ch := range platonicEdgeSets[name] {
			if err := addMirrored(methodPlatonicSolid, g, cfg, vs[ch.U], vs[ch.V]); err != nil {
				return err
			}
		}
		if withCenter {
			for _, v := range vs[:n] {
				if err := addMirrored(methodPlatonicSolid, g, cfg, vs[n], v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
