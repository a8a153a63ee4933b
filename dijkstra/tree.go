package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// ShortestPathTree reconstructs a shortest-path tree from the distances
// returned by Dijkstra. The result maps every reachable vertex other
// than start to the edge that reaches it on a shortest path.
func ShortestPathTree[V any, E graph.Weighted](
	g graph.Graph[V, E],
	start *graph.Vertex[V, E],
	costs map[*graph.Vertex[V, E]]int64,
) (map[*graph.Vertex[V, E]]*graph.Edge[V, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tree := make(map[*graph.Vertex[V, E]]*graph.Edge[V, E], len(costs))
	for _, v := range g.Vertices() {
		cv, ok := costs[v]
		if v == start || !ok || cv == Infinity {
			continue
		}
		edges, err := g.IncomingEdges(v)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: incoming edges: %w", err)
		}
		for _, e := range edges {
			u, err := g.Opposite(v, e)
			if err != nil {
				return nil, fmt.Errorf("dijkstra: opposite: %w", err)
			}
			cu, ok := costs[u]
			if !ok || cu == Infinity {
				continue
			}
			if cv == add(cu, e.Element().Weight()) {
				tree[v] = e
			}
		}
	}
	return tree, nil
}

// PathTo follows tree from dest back to start and returns the edges in
// travel order. The path from start to itself is empty.
func PathTo[V any, E graph.Weighted](
	g graph.Graph[V, E],
	tree map[*graph.Vertex[V, E]]*graph.Edge[V, E],
	start, dest *graph.Vertex[V, E],
) ([]*graph.Edge[V, E], error) {
	var path []*graph.Edge[V, E]
	for cur := dest; cur != start; {
		e, ok := tree[cur]
		if !ok || len(path) > len(tree) {
			return nil, ErrNotReached
		}
		path = append(path, e)
		prev, err := g.Opposite(cur, e)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: opposite: %w", err)
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
