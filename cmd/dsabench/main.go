// Command dsabench drives every ordered map and graph algorithm in the
// module over a seeded random workload and logs what each one produced.
//
// The ordered maps are checked against a B-tree oracle: any disagreement
// is logged and the command exits non-zero.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"

	"github.com/katalvlaran/dsa/bfs"
	"github.com/katalvlaran/dsa/builder"
	"github.com/katalvlaran/dsa/dfs"
	"github.com/katalvlaran/dsa/dijkstra"
	"github.com/katalvlaran/dsa/graph"
	"github.com/katalvlaran/dsa/internal/baseline"
	"github.com/katalvlaran/dsa/ordmap"
	"github.com/katalvlaran/dsa/prim_kruskal"
	"github.com/katalvlaran/dsa/searchtable"
	"github.com/katalvlaran/dsa/searchtree"
	"github.com/katalvlaran/dsa/skiplist"
)

var logger = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
	Level:         slog.LevelDebug,
	TimeFormat:    "15:04:05.000",
	SrcFileMode:   slogcolor.ShortFile,
	SrcFileLength: 16,
	MsgPrefix:     color.HiWhiteString("|"),
	MsgColor:      color.New(color.FgHiWhite),
	MsgLength:     24,
}))

var errDisagree = errors.New("dsabench: map disagrees with oracle")

func main() {
	var (
		ops      = flag.Int("n", 20000, "number of map operations")
		vertices = flag.Int("v", 200, "number of graph vertices")
		seed     = flag.Int64("seed", 1, "random seed")
		p        = flag.Float64("p", 0.05, "edge probability of the random graph")
	)
	flag.Parse()
	slog.SetDefault(logger)

	failed := false
	if err := runMaps(*ops, *seed); err != nil {
		slog.Error("maps", "err", err)
		failed = true
	}
	if err := runGraphs(*vertices, *p, *seed); err != nil {
		slog.Error("graphs", "err", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

type op struct {
	kind int // 0 put, 1 get, 2 remove
	key  int
}

func workload(n int, seed int64) []op {
	rnd := rand.New(rand.NewSource(seed))
	keySpace := n/4 + 1
	out := make([]op, n)
	for i := range out {
		out[i] = op{kind: rnd.Intn(3), key: rnd.Intn(keySpace)}
	}
	return out
}

func candidates(seed int64) []struct {
	name string
	m    ordmap.Map[int, int]
} {
	return []struct {
		name string
		m    ordmap.Map[int, int]
	}{
		{"bst", searchtree.NewBST[int, int]()},
		{"avl", searchtree.NewAVL[int, int]()},
		{"redblack", searchtree.NewRedBlack[int, int]()},
		{"splay", searchtree.NewSplay[int, int]()},
		{"skiplist", skiplist.New[int, int](skiplist.WithSeed(seed))},
		{"searchtable", searchtable.New[int, int]()},
		{"llrb", baseline.NewLLRB[int, int]()},
		{"gods", baseline.NewGods[int, int]()},
	}
}

// runMaps replays the same workload on every map and on the oracle.
func runMaps(n int, seed int64) error {
	ops := workload(n, seed)

	oracle := baseline.NewBTree[int, int]()
	results := make([]int, len(ops))
	for i, o := range ops {
		results[i] = apply(oracle, o, i)
	}
	wantKeys := oracle.Keys()

	var errs []error
	for _, c := range candidates(seed) {
		begin := time.Now()
		for i, o := range ops {
			if got := apply(c.m, o, i); got != results[i] {
				errs = append(errs, fmt.Errorf("%w: %s op %d key %d got %d want %d",
					errDisagree, c.name, i, o.key, got, results[i]))
				break
			}
		}
		elapsed := time.Since(begin)
		if !slices.Equal(c.m.Keys(), wantKeys) {
			errs = append(errs, fmt.Errorf("%w: %s final keys", errDisagree, c.name))
		}
		slog.Info("map", "name", c.name, "ops", len(ops), "size", c.m.Size(), "elapsed", elapsed)
	}
	return errors.Join(errs...)
}

// apply runs o against m and folds the outcome into one comparable int.
func apply(m ordmap.Map[int, int], o op, i int) int {
	var (
		v  int
		ok bool
	)
	switch o.kind {
	case 0:
		v, ok = m.Put(o.key, i)
	case 1:
		v, ok = m.Get(o.key)
	default:
		v, ok = m.Remove(o.key)
	}
	if !ok {
		return -1
	}
	return v
}

// runGraphs builds a seeded random graph and runs each algorithm on it.
func runGraphs(n int, p float64, seed int64) error {
	bopts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 100)}
	g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(n, p))
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	slog.Info("graph", "vertices", g.NumVertices(), "edges", g.NumEdges())
	start := g.Vertices()[0]

	maxDepth := 0
	res, err := bfs.BFS[string, graph.Weight](g, start, bfs.WithOnVisit(func(_ *graph.Vertex[string, graph.Weight], depth int) error {
		maxDepth = max(maxDepth, depth)
		return nil
	}))
	if err != nil {
		return fmt.Errorf("bfs: %w", err)
	}
	slog.Info("bfs", "reached", len(res.Order), "depth", maxDepth)

	dres, err := dfs.DFS[string, graph.Weight](g, nil, dfs.WithFullTraversal())
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	cyclic, err := dfs.HasCycle[string, graph.Weight](g)
	if err != nil {
		return fmt.Errorf("cycle: %w", err)
	}
	slog.Info("dfs", "visited", len(dres.Preorder), "tree edges", len(dres.Discovery), "cyclic", cyclic)

	sp, err := dijkstra.ShortestPaths[string, graph.Weight](g, start, dijkstra.WithReturnPath())
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	reachable, far, farthest := 0, int64(0), start
	for v, c := range sp.Dist {
		if c == dijkstra.Infinity {
			continue
		}
		reachable++
		if c > far {
			far, farthest = c, v
		}
	}
	hops, err := dijkstra.PathTo[string, graph.Weight](g, sp.Prev, start, farthest)
	if err != nil {
		return fmt.Errorf("dijkstra path: %w", err)
	}
	slog.Info("dijkstra", "source", start.Element(), "reachable", reachable, "eccentricity", far, "hops", len(hops))

	for _, m := range []prim_kruskal.Method{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute[string, graph.Weight](g, prim_kruskal.WithMethod(m))
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		slog.Info("mst", "method", m, "edges", len(edges), "total", total)
	}

	dag, err := builder.BuildGraph([]graph.Option{graph.WithDirected(true)}, bopts, builder.Path(n))
	if err != nil {
		return fmt.Errorf("build dag: %w", err)
	}
	order, err := dfs.TopologicalSort[string, graph.Weight](dag)
	if err != nil {
		return fmt.Errorf("topological sort: %w", err)
	}
	slog.Info("topo", "first", order[0].Element(), "last", order[len(order)-1].Element())

	// even degree keeps n*d even for any n
	reg, err := builder.BuildGraph(nil, bopts, builder.RandomRegular(n, 4))
	if err != nil {
		return fmt.Errorf("build regular: %w", err)
	}
	_, total, err := prim_kruskal.Compute[string, graph.Weight](reg)
	if err != nil {
		return fmt.Errorf("regular mst: %w", err)
	}
	slog.Info("regular", "vertices", reg.NumVertices(), "edges", reg.NumEdges(), "mst", total)

	return nil
}
