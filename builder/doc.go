// Package builder provides deterministic graph generators over the
// graph package.
//
// What:
//
//   - A Constructor is a closure that inserts one topology into a
//     graph.Graph[string, graph.Weight]: Complete, CompleteBipartite,
//     Cycle, Path, Star, Wheel, Grid, PlatonicSolid, Hexagram,
//     RandomSparse and RandomRegular.
//   - BuildGraph and BuildMatrix create a fresh adjacency-map or
//     adjacency-matrix graph and apply constructors in order; Build
//     applies them to an existing graph.
//   - Vertex payloads come from an ID scheme (WithIDScheme, default
//     "0","1",...). Edge weights come from a weight function
//     (WithWeightFn, default constant 1) fed by an optional RNG
//     (WithSeed / WithRand).
//
// Determinism:
//
//	Vertices are inserted in ascending index order and edges in a fixed
//	(i, j) order. With a fixed seed the same graph, including weights,
//	is produced on every run.
//
// Each constructor inserts its own vertices; applying two constructors
// yields two disjoint components.
//
// Errors:
//
//   - ErrTooFewVertices        size parameter below the topology minimum,
//     or a RandomRegular (n, d) pair with no simple d-regular graph
//   - ErrInvalidProbability    RandomSparse p outside [0,1]
//   - ErrNeedRandSource        RandomSparse with 0<p<1, or RandomRegular
//     with d>0, and no RNG
//   - ErrUnsupportedGraphMode  RandomRegular on a directed graph
//   - ErrOptionViolation       unknown PlatonicName or HexagramVariant
//   - ErrConstructFailed       nil graph, nil constructor, or no stub
//     matching found by RandomRegular
//
// PlatonicSolid and CompleteBipartite mirror every edge in a directed
// graph. Hexagram lays its chords over an existing ring and never
// duplicates an edge.
package builder
