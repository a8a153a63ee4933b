package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
	"github.com/katalvlaran/dsa/prim_kruskal"
)

// ExampleKruskal computes the MST of a weighted square with one diagonal.
func ExampleKruskal() {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a := g.InsertVertex("A")
	b := g.InsertVertex("B")
	c := g.InsertVertex("C")
	d := g.InsertVertex("D")
	_, _ = g.InsertEdge(a, b, 1)
	_, _ = g.InsertEdge(b, c, 4)
	_, _ = g.InsertEdge(c, d, 2)
	_, _ = g.InsertEdge(d, a, 3)
	_, _ = g.InsertEdge(a, c, 5)

	mst, total, err := prim_kruskal.Kruskal[string, graph.Weight](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range mst {
		u, v, _ := g.EndVertices(e)
		fmt.Printf("%s-%s %d\n", u.Element(), v.Element(), e.Element())
	}
	fmt.Println("total:", total)
	// Output:
	// A-B 1
	// C-D 2
	// D-A 3
	// total: 6
}

// ExamplePrimJarnik grows the same tree from A.
func ExamplePrimJarnik() {
	g := graph.NewAdjacencyMap[string, graph.Weight]()
	a := g.InsertVertex("A")
	b := g.InsertVertex("B")
	c := g.InsertVertex("C")
	d := g.InsertVertex("D")
	_, _ = g.InsertEdge(a, b, 1)
	_, _ = g.InsertEdge(b, c, 4)
	_, _ = g.InsertEdge(c, d, 2)
	_, _ = g.InsertEdge(d, a, 3)
	_, _ = g.InsertEdge(a, c, 5)

	mst, total, _ := prim_kruskal.PrimJarnik[string, graph.Weight](g)
	for _, e := range mst {
		u, v, _ := g.EndVertices(e)
		fmt.Printf("%s-%s %d\n", u.Element(), v.Element(), e.Element())
	}
	fmt.Println("total:", total)
	// Output:
	// A-B 1
	// D-A 3
	// C-D 2
	// total: 6
}
