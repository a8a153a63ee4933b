package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dsa/bfs"
	"github.com/katalvlaran/dsa/graph"
)

type (
	vertex = *graph.Vertex[string, graph.Weight]
	edge   = *graph.Edge[string, graph.Weight]
)

// fixture builds an undirected graph with named vertices and returns the
// vertex handles by name.
func fixture(t *testing.T, g graph.Graph[string, graph.Weight], names []string, pairs [][2]string) map[string]vertex {
	t.Helper()
	vs := make(map[string]vertex, len(names))
	for _, n := range names {
		vs[n] = g.InsertVertex(n)
	}
	for _, p := range pairs {
		if _, err := g.InsertEdge(vs[p[0]], vs[p[1]], 1); err != nil {
			t.Fatalf("InsertEdge(%s,%s): %v", p[0], p[1], err)
		}
	}
	return vs
}

func names(order []vertex) []string {
	out := make([]string, len(order))
	for i, v := range order {
		out[i] = v.Element()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[string, graph.Weight](nil, nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := graph.NewAdjacencyMap[string, graph.Weight]()
	other := graph.NewAdjacencyMap[string, graph.Weight]()
	foreign := other.InsertVertex("A")
	if _, err := bfs.BFS[string, graph.Weight](g, foreign); !errors.Is(err, graph.ErrForeignVertex) {
		t.Errorf("foreign start: want ErrForeignVertex, got %v", err)
	}

	a := g.InsertVertex("A")
	if _, err := bfs.BFS[string, graph.Weight](g, a, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a := g.InsertVertex("A")
	res, err := bfs.BFS[string, graph.Weight](g, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(res.Order); !equal(got, []string{"A"}) {
		t.Errorf("Order = %v; want [A]", got)
	}
	if d := res.Depth[a]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if len(res.Discovery) != 0 {
		t.Errorf("Discovery = %v; want empty", res.Discovery)
	}
}

// TestBFS_CycleDepths checks layer order and depths on a 4-cycle for both
// graph representations.
func TestBFS_CycleDepths(t *testing.T) {
	impls := map[string]func() graph.Graph[string, graph.Weight]{
		"map":    func() graph.Graph[string, graph.Weight] { return graph.NewAdjacencyMap[string, graph.Weight]() },
		"matrix": func() graph.Graph[string, graph.Weight] { return graph.NewAdjacencyMatrix[string, graph.Weight]() },
	}
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			g := mk()
			vs := fixture(t, g, []string{"A", "B", "C", "D"},
				[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

			res, err := bfs.BFS(g, vs["A"])
			if err != nil {
				t.Fatal(err)
			}
			// A's edges were inserted A-B before D-A, so B precedes D.
			if got := names(res.Order); !equal(got, []string{"A", "B", "D", "C"}) {
				t.Errorf("Order = %v; want [A B D C]", got)
			}
			want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
			for n, d := range want {
				if got := res.Depth[vs[n]]; got != d {
					t.Errorf("Depth[%s] = %d; want %d", n, got, d)
				}
			}
			if p := res.Parent[vs["C"]]; p != vs["B"] {
				t.Errorf("Parent[C] = %v; want B", p.Element())
			}
			if len(res.Discovery) != 3 {
				t.Errorf("len(Discovery) = %d; want 3", len(res.Discovery))
			}
		})
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"X", "Y", "P", "Q"}, [][2]string{{"X", "Y"}, {"P", "Q"}})

	resX, _ := bfs.BFS[string, graph.Weight](g, vs["X"])
	if got := names(resX.Order); !equal(got, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", got)
	}
	if _, ok := resX.Depth[vs["P"]]; ok {
		t.Errorf("P reached from X")
	}
	if _, err := resX.PathTo(vs["Q"]); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(Q): want ErrNotReached, got %v", err)
	}
}

// TestBFS_Directed follows edge direction only.
func TestBFS_Directed(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight](graph.WithDirected(true))
	vs := fixture(t, g, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"C", "B"}})

	res, err := bfs.BFS[string, graph.Weight](g, vs["A"])
	if err != nil {
		t.Fatal(err)
	}
	if got := names(res.Order); !equal(got, []string{"A", "B"}) {
		t.Errorf("Order = %v; want [A B]", got)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS[string, graph.Weight](g, vs["A"], bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatalf("MaxDepth=%d: %v", tc.depth, err)
		}
		if got := names(res.Order); !equal(got, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, got, tc.want)
		}
	}
}

// TestBFS_PathTo reconstructs discovery paths.
func TestBFS_PathTo(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "C"}})

	res, err := bfs.BFS[string, graph.Weight](g, vs["A"])
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(vs["A"])
	if err != nil || len(path) != 0 {
		t.Errorf("PathTo(start) = %v, %v; want empty", path, err)
	}

	path, err = res.PathTo(vs["D"])
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 {
		t.Fatalf("len(PathTo(D)) = %d; want 2", len(path))
	}
	var cur vertex = vs["A"]
	for _, e := range path {
		next, err := g.Opposite(cur, e)
		if err != nil {
			t.Fatalf("path edge not incident to %s: %v", cur.Element(), err)
		}
		cur = next
	}
	if cur != vs["D"] {
		t.Errorf("path ends at %s; want D", cur.Element())
	}
}

// TestBFS_ParallelPathsVisitOnce ensures a vertex reachable through several
// edges is enqueued once.
func TestBFS_ParallelPathsVisitOnce(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, _ := bfs.BFS[string, graph.Weight](g, vs["A"])
	if got := names(res.Order); !equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("Order = %v; want [A B C D]", got)
	}
	var d edge = res.Discovery[vs["D"]]
	if u, v, _ := g.EndVertices(d); u != vs["B"] || v != vs["D"] {
		t.Errorf("D discovered via %s-%s; want B-D", u.Element(), v.Element())
	}
}

// TestBFS_CitiesDiscovery runs BFS over the complete five-city graph:
// every city is discovered directly from Raleigh.
func TestBFS_CitiesDiscovery(t *testing.T) {
	cities := []string{"Raleigh", "Asheville", "Wilmington", "Durham", "Greenville"}
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, cities, nil)
	var direct []edge
	w := graph.Weight(5)
	for i := range cities {
		for j := i + 1; j < len(cities); j++ {
			e, err := g.InsertEdge(vs[cities[i]], vs[cities[j]], w)
			if err != nil {
				t.Fatal(err)
			}
			if i == 0 {
				direct = append(direct, e)
			}
			w += 5
		}
	}

	res, err := bfs.BFS[string, graph.Weight](g, vs["Raleigh"])
	if err != nil {
		t.Fatal(err)
	}
	for i, city := range cities[1:] {
		if got := res.Discovery[vs[city]]; got != direct[i] {
			t.Errorf("Discovery[%s] is not the direct edge from Raleigh", city)
		}
		if d := res.Depth[vs[city]]; d != 1 {
			t.Errorf("Depth[%s] = %d; want 1", city, d)
		}
	}
}

// TestBFS_Hooks records the enqueue, dequeue and visit callbacks on a
// small tree.
func TestBFS_Hooks(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}})

	var trace []string
	res, err := bfs.BFS[string, graph.Weight](g, vs["A"],
		bfs.WithOnEnqueue(func(v vertex, d int) { trace = append(trace, "enq:"+v.Element()) }),
		bfs.WithOnDequeue(func(v vertex, d int) { trace = append(trace, "deq:"+v.Element()) }),
		bfs.WithOnVisit(func(v vertex, d int) error {
			if d > 2 {
				t.Errorf("visit %s at depth %d", v.Element(), d)
			}
			trace = append(trace, "vis:"+v.Element())
			return nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"enq:A", "deq:A", "vis:A", "enq:B", "enq:C",
		"deq:B", "vis:B", "enq:D",
		"deq:C", "vis:C",
		"deq:D", "vis:D",
	}
	if !equal(trace, want) {
		t.Errorf("trace = %v; want %v", trace, want)
	}
	if got := names(res.Order); !equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("Order = %v; want [A B C D]", got)
	}
}

// TestBFS_OnVisitError stops the search at the failing vertex.
func TestBFS_OnVisitError(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	stop := errors.New("stop")
	res, err := bfs.BFS[string, graph.Weight](g, vs["A"],
		bfs.WithOnVisit(func(v vertex, _ int) error {
			if v == vs["B"] {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want stop error, got %v", err)
	}
	if _, ok := res.Depth[vs["C"]]; ok {
		t.Errorf("C reached after OnVisit failed at B")
	}
}

// TestBFS_FilterNeighbor prunes an edge and reaches its target another way.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	vs := fixture(t, g, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, err := bfs.BFS[string, graph.Weight](g, vs["A"],
		bfs.WithFilterNeighbor(func(curr, next vertex) bool {
			return !(curr == vs["B"] && next == vs["D"])
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if p := res.Parent[vs["D"]]; p != vs["C"] {
		t.Errorf("Parent[D] = %v; want C", p.Element())
	}

	res, _ = bfs.BFS[string, graph.Weight](g, vs["A"],
		bfs.WithFilterNeighbor(func(_, next vertex) bool { return next != vs["D"] }),
	)
	if _, ok := res.Depth[vs["D"]]; ok {
		t.Errorf("D reached although every edge into it was filtered")
	}
}

// TestBFS_HookTypeMismatch rejects a hook written for another graph type.
func TestBFS_HookTypeMismatch(t *testing.T) {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a := g.InsertVertex("A")
	_, err := bfs.BFS[string, graph.Weight](g, a,
		bfs.WithOnEnqueue(func(*graph.Vertex[int, int], int) {}),
	)
	if !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("want ErrOptionViolation, got %v", err)
	}
}
