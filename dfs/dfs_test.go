package dfs_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/dfs"
	"github.com/katalvlaran/dsa/graph"
)

type (
	wgraph = graph.Graph[string, graph.Weight]
	vertex = *graph.Vertex[string, graph.Weight]
)

// build inserts the named vertices and the given edges into g.
func build(t testing.TB, g wgraph, names []string, pairs ...[2]string) map[string]vertex {
	t.Helper()
	vs := make(map[string]vertex, len(names))
	for _, n := range names {
		vs[n] = g.InsertVertex(n)
	}
	for _, p := range pairs {
		_, err := g.InsertEdge(vs[p[0]], vs[p[1]], 1)
		require.NoError(t, err, "InsertEdge(%s,%s)", p[0], p[1])
	}
	return vs
}

// buildChain returns a path 0-1-...-n-1.
func buildChain(t testing.TB, g wgraph, n int) []vertex {
	t.Helper()
	vs := make([]vertex, n)
	for i := range vs {
		vs[i] = g.InsertVertex(strconv.Itoa(i))
		if i > 0 {
			_, err := g.InsertEdge(vs[i-1], vs[i], 1)
			require.NoError(t, err)
		}
	}
	return vs
}

func labels(vs []vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Element()
	}
	return out
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string, graph.Weight](nil, nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := graph.NewAdjacencyMap[string, graph.Weight]()
	foreign := graph.NewAdjacencyMap[string, graph.Weight]().InsertVertex("x")
	_, err = dfs.DFS[string, graph.Weight](g, foreign)
	assert.ErrorIs(t, err, graph.ErrForeignVertex)

	_, err = dfs.DFS[string, graph.Weight](g, nil)
	assert.ErrorIs(t, err, graph.ErrForeignVertex, "nil start needs full traversal")

	a := g.InsertVertex("A")
	_, err = dfs.DFS[string, graph.Weight](g, a, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a := g.InsertVertex("A")

	res, err := dfs.DFS[string, graph.Weight](g, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, labels(res.Preorder))
	assert.Equal(t, []string{"A"}, labels(res.Postorder))
	assert.Equal(t, 0, res.Depth[a])
	assert.Empty(t, res.Discovery)
	assert.Empty(t, res.Parent)
}

func TestDFS_BranchOrder(t *testing.T) {
	for name, g := range map[string]wgraph{
		"map":    graph.NewAdjacencyMap[string, graph.Weight](),
		"matrix": graph.NewAdjacencyMatrix[string, graph.Weight](),
	} {
		t.Run(name, func(t *testing.T) {
			//   A
			//  / \
			// B   C
			// |   |
			// D---+
			vs := build(t, g, []string{"A", "B", "C", "D"},
				[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})

			res, err := dfs.DFS(g, vs["A"])
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "D", "C"}, labels(res.Preorder))
			assert.Equal(t, []string{"C", "D", "B", "A"}, labels(res.Postorder))
			assert.Equal(t, map[vertex]int{vs["A"]: 0, vs["B"]: 1, vs["D"]: 2, vs["C"]: 3}, res.Depth)
			assert.Equal(t, vs["D"], res.Parent[vs["C"]])

			// C was discovered through the C-D edge, not A-C.
			u, v, err := g.EndVertices(res.Discovery[vs["C"]])
			require.NoError(t, err)
			assert.ElementsMatch(t, []vertex{vs["C"], vs["D"]}, []vertex{u, v})
			assert.Len(t, res.Discovery, 3)
		})
	}
}

func TestDFS_Disconnected(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := build(t, g, []string{"X", "Y", "P", "Q"}, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	res, err := dfs.DFS[string, graph.Weight](g, vs["X"])
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, labels(res.Preorder))
	assert.False(t, res.Visited(vs["P"]))

	_, err = res.PathTo(vs["Q"])
	assert.ErrorIs(t, err, dfs.ErrNotReached)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := build(t, g, []string{"X", "Y", "P", "Q"}, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	res, err := dfs.DFS[string, graph.Weight](g, vs["P"], dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q", "X", "Y"}, labels(res.Preorder))
	assert.Equal(t, 0, res.Depth[vs["X"]])
	assert.NotContains(t, res.Discovery, vs["X"])

	res, err = dfs.DFS[string, graph.Weight](g, nil, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "P", "Q"}, labels(res.Preorder))
}

func TestDFS_MaxDepth(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	chain := buildChain(t, g, 5)

	res, err := dfs.DFS[string, graph.Weight](g, chain[0], dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, labels(res.Preorder))

	res, err = dfs.DFS[string, graph.Weight](g, chain[0], dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, labels(res.Preorder))
}

func TestDFS_Hooks(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight](graph.WithDirected(true))
	vs := build(t, g, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	var trace []string
	res, err := dfs.DFS[string, graph.Weight](g, vs["A"],
		dfs.WithOnVisit(func(v vertex) error { trace = append(trace, "in:"+v.Element()); return nil }),
		dfs.WithOnExit(func(v vertex) error { trace = append(trace, "out:"+v.Element()); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"in:A", "in:B", "in:C", "out:C", "out:B", "out:A"}, trace)
	assert.Equal(t, []string{"C", "B", "A"}, labels(res.Postorder))
}

func TestDFS_HookError(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := build(t, g, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	stop := errors.New("stop")
	res, err := dfs.DFS[string, graph.Weight](g, vs["A"],
		dfs.WithOnExit(func(v vertex) error {
			if v == vs["B"] {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"C"}, labels(res.Postorder))
}

func TestDFS_HookTypeMismatch(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := build(t, g, []string{"A", "B"}, [2]string{"A", "B"})

	_, err := dfs.DFS[string, graph.Weight](g, vs["A"],
		dfs.WithOnVisit(func(*graph.Vertex[int, graph.Weight]) error { return nil }),
	)
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_PathTo(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	chain := buildChain(t, g, 6)

	res, err := dfs.DFS[string, graph.Weight](g, chain[0])
	require.NoError(t, err)

	path, err := res.PathTo(chain[5])
	require.NoError(t, err)
	require.Len(t, path, 5)
	cur := chain[0]
	for _, e := range path {
		cur, err = g.Opposite(cur, e)
		require.NoError(t, err)
	}
	assert.Equal(t, chain[5], cur)

	path, err = res.PathTo(chain[0])
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestDFS_LargeChain(t *testing.T) {
	const n = 2000
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	chain := buildChain(t, g, n)

	res, err := dfs.DFS[string, graph.Weight](g, chain[0])
	require.NoError(t, err)
	require.Len(t, res.Postorder, n)
	assert.Equal(t, chain[n-1], res.Postorder[0])
	assert.Equal(t, chain[0], res.Postorder[n-1])
	assert.Equal(t, n-1, res.Depth[chain[n-1]])
}

// TestDFS_CitiesDiscovery runs DFS over the complete five-city graph and
// checks which edge discovered each city.
func TestDFS_CitiesDiscovery(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	names := []string{"Raleigh", "Asheville", "Wilmington", "Durham", "Greenville"}
	vs := make([]vertex, len(names))
	for i, n := range names {
		vs[i] = g.InsertVertex(n)
	}
	edges := make(map[[2]int]*graph.Edge[string, graph.Weight])
	w := graph.Weight(5)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			e, err := g.InsertEdge(vs[i], vs[j], w)
			require.NoError(t, err)
			edges[[2]int{i, j}] = e
			w += 5
		}
	}

	res, err := dfs.DFS[string, graph.Weight](g, vs[0])
	require.NoError(t, err)
	assert.Same(t, edges[[2]int{0, 1}], res.Discovery[vs[1]])
	assert.Same(t, edges[[2]int{1, 2}], res.Discovery[vs[2]])
	assert.Same(t, edges[[2]int{2, 3}], res.Discovery[vs[3]])
	assert.Same(t, edges[[2]int{3, 4}], res.Discovery[vs[4]])
}
