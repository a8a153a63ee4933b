package dijkstra_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/dijkstra"
	"github.com/katalvlaran/dsa/graph"
)

type (
	wgraph = graph.Graph[string, graph.Weight]
	vertex = *graph.Vertex[string, graph.Weight]
	edge   = *graph.Edge[string, graph.Weight]
)

var impls = map[string]func(opts ...graph.Option) wgraph{
	"map":    func(opts ...graph.Option) wgraph { return graph.NewAdjacencyMap[string, graph.Weight](opts...) },
	"matrix": func(opts ...graph.Option) wgraph { return graph.NewAdjacencyMatrix[string, graph.Weight](opts...) },
}

// cities builds the complete five-city graph: Raleigh's edges weigh
// 5, 10, 15, 20 and the remaining six edges 25..50.
func cities(t *testing.T, g wgraph) ([]vertex, []edge) {
	t.Helper()
	names := []string{"Raleigh", "Asheville", "Wilmington", "Durham", "Greenville"}
	vs := make([]vertex, len(names))
	for i, n := range names {
		vs[i] = g.InsertVertex(n)
	}
	var es []edge
	w := graph.Weight(5)
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			e, err := g.InsertEdge(vs[i], vs[j], w)
			require.NoError(t, err)
			es = append(es, e)
			w += 5
		}
	}
	return vs, es
}

func TestDijkstra_Cities(t *testing.T) {
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			g := mk()
			vs, es := cities(t, g)

			dist, err := dijkstra.Dijkstra(g, vs[0])
			require.NoError(t, err)
			assert.Equal(t, int64(0), dist[vs[0]])
			assert.Equal(t, int64(5), dist[vs[1]])
			assert.Equal(t, int64(10), dist[vs[2]])
			assert.Equal(t, int64(15), dist[vs[3]])
			assert.Equal(t, int64(20), dist[vs[4]])

			tree, err := dijkstra.ShortestPathTree(g, vs[0], dist)
			require.NoError(t, err)
			require.Len(t, tree, 4)
			for i := 1; i < 5; i++ {
				assert.Same(t, es[i-1], tree[vs[i]], "tree edge of %s", vs[i].Element())
			}
			assert.NotContains(t, tree, vs[0])
		})
	}
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra[string, graph.Weight](nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := graph.NewAdjacencyMap[string, graph.Weight]()
	foreign := graph.NewAdjacencyMap[string, graph.Weight]().InsertVertex("x")
	_, err = dijkstra.Dijkstra[string, graph.Weight](g, foreign)
	assert.ErrorIs(t, err, graph.ErrForeignVertex)

	a := g.InsertVertex("a")
	b := g.InsertVertex("b")
	_, err = g.InsertEdge(a, b, -1)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra[string, graph.Weight](g, a)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.ShortestPathTree[string, graph.Weight](nil, nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight](graph.WithDirected(true))
	a := g.InsertVertex("a")
	b := g.InsertVertex("b")
	c := g.InsertVertex("c")
	d := g.InsertVertex("d")
	_, _ = g.InsertEdge(a, b, 3)
	// c is isolated from a; its edge to d must not relax d from Infinity.
	_, _ = g.InsertEdge(c, d, 1)

	dist, err := dijkstra.Dijkstra[string, graph.Weight](g, a)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist[b])
	assert.Equal(t, dijkstra.Infinity, dist[c])
	assert.Equal(t, dijkstra.Infinity, dist[d])

	tree, err := dijkstra.ShortestPathTree[string, graph.Weight](g, a, dist)
	require.NoError(t, err)
	assert.Len(t, tree, 1)

	_, err = dijkstra.PathTo[string, graph.Weight](g, tree, a, d)
	assert.ErrorIs(t, err, dijkstra.ErrNotReached)
}

func TestDijkstra_Saturation(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight](graph.WithDirected(true))
	a := g.InsertVertex("a")
	b := g.InsertVertex("b")
	c := g.InsertVertex("c")
	_, _ = g.InsertEdge(a, b, graph.Weight(dijkstra.Infinity-1))
	_, _ = g.InsertEdge(b, c, 10)

	dist, err := dijkstra.Dijkstra[string, graph.Weight](g, a)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, dist[b])
	assert.Equal(t, dijkstra.Infinity, dist[c], "sum must saturate instead of wrapping")
}

func TestDijkstra_DirectedDetour(t *testing.T) {
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			g := mk(graph.WithDirected(true))
			s := g.InsertVertex("s")
			x := g.InsertVertex("x")
			y := g.InsertVertex("y")
			z := g.InsertVertex("z")
			_, _ = g.InsertEdge(s, z, 10)
			sx, _ := g.InsertEdge(s, x, 1)
			xy, _ := g.InsertEdge(x, y, 2)
			yz, _ := g.InsertEdge(y, z, 3)
			_, _ = g.InsertEdge(z, s, 1)

			dist, err := dijkstra.Dijkstra(g, s)
			require.NoError(t, err)
			assert.Equal(t, int64(6), dist[z])

			tree, err := dijkstra.ShortestPathTree(g, s, dist)
			require.NoError(t, err)
			path, err := dijkstra.PathTo(g, tree, s, z)
			require.NoError(t, err)
			assert.Equal(t, []edge{sx, xy, yz}, path)

			path, err = dijkstra.PathTo(g, tree, s, s)
			require.NoError(t, err)
			assert.Empty(t, path)
		})
	}
}

// TestDijkstra_TieLastEdgeWins pins the documented tie-break: the last
// qualifying incoming edge is kept.
func TestDijkstra_TieLastEdgeWins(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	s := g.InsertVertex("s")
	a := g.InsertVertex("a")
	b := g.InsertVertex("b")
	t0 := g.InsertVertex("t")
	_, _ = g.InsertEdge(s, a, 1)
	_, _ = g.InsertEdge(s, b, 1)
	_, _ = g.InsertEdge(a, t0, 1)
	bt, _ := g.InsertEdge(b, t0, 1)

	dist, err := dijkstra.Dijkstra[string, graph.Weight](g, s)
	require.NoError(t, err)
	tree, err := dijkstra.ShortestPathTree[string, graph.Weight](g, s, dist)
	require.NoError(t, err)
	assert.Same(t, bt, tree[t0])
}

// TestDijkstra_RandomAgainstBellmanFord cross-checks distances on random
// sparse graphs.
func TestDijkstra_RandomAgainstBellmanFord(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		g := graph.NewAdjacencyMap[string, graph.Weight](graph.WithDirected(round%2 == 0))
		n := 2 + rnd.Intn(25)
		vs := make([]vertex, n)
		for i := range vs {
			vs[i] = g.InsertVertex(strconv.Itoa(i))
		}
		for k := 0; k < 3*n; k++ {
			u, v := vs[rnd.Intn(n)], vs[rnd.Intn(n)]
			if u == v {
				continue
			}
			_, _ = g.InsertEdge(u, v, graph.Weight(rnd.Intn(20)))
		}

		dist, err := dijkstra.Dijkstra[string, graph.Weight](g, vs[0])
		require.NoError(t, err)
		assert.Equal(t, bellmanFord(g, vs[0]), dist, "round %d", round)
	}
}

func bellmanFord(g wgraph, src vertex) map[vertex]int64 {
	dist := make(map[vertex]int64)
	for _, v := range g.Vertices() {
		dist[v] = dijkstra.Infinity
	}
	dist[src] = 0
	for i := 0; i < g.NumVertices(); i++ {
		for _, e := range g.Edges() {
			u, v, _ := g.EndVertices(e)
			w := int64(e.Element())
			if dist[u] != dijkstra.Infinity && dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
			}
			if !g.IsDirected() && dist[v] != dijkstra.Infinity && dist[v]+w < dist[u] {
				dist[u] = dist[v] + w
			}
		}
	}
	return dist
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a, b, c := g.InsertVertex("A"), g.InsertVertex("B"), g.InsertVertex("C")
	_, _ = g.InsertEdge(a, b, 5)
	_, _ = g.InsertEdge(b, c, 5)

	dist, err := dijkstra.Dijkstra(g, a, dijkstra.WithMaxDistance(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), dist[b])
	assert.Equal(t, dijkstra.Infinity, dist[c])

	dist, err = dijkstra.Dijkstra(g, a, dijkstra.WithMaxDistance(10))
	require.NoError(t, err)
	assert.Equal(t, int64(10), dist[c])

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a, b, c := g.InsertVertex("A"), g.InsertVertex("B"), g.InsertVertex("C")
	_, _ = g.InsertEdge(a, b, 2)
	_, _ = g.InsertEdge(a, c, 100)
	_, _ = g.InsertEdge(b, c, 50)

	dist, err := dijkstra.Dijkstra(g, a, dijkstra.WithInfEdgeThreshold(60))
	require.NoError(t, err)
	assert.Equal(t, int64(52), dist[c], "the 100 edge is a wall")

	dist, err = dijkstra.Dijkstra(g, a, dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist[c])
	assert.Equal(t, int64(2), dist[b])

	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestShortestPaths_ReturnPath(t *testing.T) {
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			g := mk(graph.WithDirected(true))
			s := g.InsertVertex("s")
			x := g.InsertVertex("x")
			y := g.InsertVertex("y")
			z := g.InsertVertex("z")
			_, _ = g.InsertEdge(s, z, 10)
			sx, _ := g.InsertEdge(s, x, 1)
			xy, _ := g.InsertEdge(x, y, 2)
			yz, _ := g.InsertEdge(y, z, 3)

			res, err := dijkstra.ShortestPaths(g, s)
			require.NoError(t, err)
			assert.Nil(t, res.Prev)

			res, err = dijkstra.ShortestPaths(g, s, dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.Equal(t, int64(6), res.Dist[z])
			assert.Equal(t, map[vertex]edge{x: sx, y: xy, z: yz}, res.Prev)

			path, err := dijkstra.PathTo(g, res.Prev, s, z)
			require.NoError(t, err)
			assert.Equal(t, []edge{sx, xy, yz}, path)
		})
	}
}
