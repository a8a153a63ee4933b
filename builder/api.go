package builder

import (
	"fmt"

	"github.com/katalvlaran/dsa/graph"
)

// Graph is the graph shape every constructor fills.
type Graph = graph.Graph[string, graph.Weight]

// Constructor inserts one topology into g using cfg.
type Constructor func(g Graph, cfg builderConfig) error

// Build applies constructors to an existing graph in order.
func Build(g Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}
	return nil
}

// BuildGraph creates an adjacency-map graph and applies constructors.
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.AdjacencyMapGraph[string, graph.Weight], error) {
	g := graph.NewAdjacencyMap[string, graph.Weight](gopts...)
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildMatrix creates an adjacency-matrix graph and applies constructors.
func BuildMatrix(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.AdjacencyMatrixGraph[string, graph.Weight], error) {
	g := graph.NewAdjacencyMatrix[string, graph.Weight](gopts...)
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}
	return g, nil
}
