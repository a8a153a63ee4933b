package builder

import "fmt"

const methodHexagram = "Hexagram"

// Hexagram returns a Constructor that overlays a star pattern on a ring.
// HexDefault and HexMedium start from Cycle(n); HexBig and HexHuge start
// from a wheel whose rim has n vertices, with the hub left untouched.
// Chords join ring vertices and are skipped when the edge already exists;
// in a directed graph each chord is mirrored.
func Hexagram(variant HexagramVariant) Constructor {
	return func(g Graph, cfg builderConfig) error {
		n, ok := hexRingSize[variant]
		if !ok {
			return fmt.Errorf("%s: unknown variant %d: %w", methodHexagram, variant, ErrOptionViolation)
		}
		var (
			ring []vertex
			err  error
		)
		switch variant {
		case HexDefault, HexMedium:
			ring, err = cycle(methodHexagram, g, cfg, n)
		default:
			ring, err = wheel(methodHexagram, g, cfg, n+1)
		}
		if err != nil {
			return err
		}
		for _, ch := range hexChords[variant] {
			if err = addChord(methodHexagram, g, cfg, ring[ch.U], ring[ch.V]); err != nil {
				return err
			}
		}
		return nil
	}
}
