package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/dsu"
	"github.com/katalvlaran/floodmst/prim_kruskal"
)

// smallGraph returns a connected graph on n vertices: a random spanning chain
// plus up to extra random edges. Weights come from {1..5} to force ties.
func smallGraph(n, extra int, seed int64) []core.Edge {
	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(n)
	edges := make([]core.Edge, 0, n-1+extra)
	add := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		edges = append(edges, core.Edge{U: u, V: v, Weight: float64(r.Intn(5) + 1)})
	}
	for i := 1; i < n; i++ {
		add(perm[i-1], perm[i])
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u != v {
			add(u, v)
		}
	}

	return edges
}

// bruteForceMST tries every (n-1)-subset of edges and returns the lightest spanning tree weight.
func bruteForceMST(n int, edges []core.Edge) float64 {
	best := math.Inf(1)
	pick := make([]int, 0, n-1)
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == n-1 {
			sets := dsu.New(n)
			var w float64
			for _, i := range pick {
				if !sets.Union(edges[i].U, edges[i].V) {
					return
				}
				w += edges[i].Weight
			}
			if w < best {
				best = w
			}
			return
		}
		for i := start; i <= len(edges)-(n-1-len(pick)); i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best
}

// TestMSTProperties checks MST size and optimality against exhaustive search (N ≤ 8).
func TestMSTProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("connected graph yields N-1 edges", prop.ForAll(
		func(n, extra int, seed int64) bool {
			mst, _, err := prim_kruskal.Kruskal(n, smallGraph(n, extra, seed))
			return err == nil && len(mst) == n-1
		},
		gen.IntRange(2, 8), gen.IntRange(0, 4), gen.Int64(),
	))

	properties.Property("Kruskal weight equals exhaustive minimum", prop.ForAll(
		func(n, extra int, seed int64) bool {
			edges := smallGraph(n, extra, seed)
			_, total, err := prim_kruskal.Kruskal(n, edges)
			return err == nil && total == bruteForceMST(n, edges)
		},
		gen.IntRange(2, 8), gen.IntRange(0, 4), gen.Int64(),
	))

	properties.Property("Prim and Kruskal agree on weight", prop.ForAll(
		func(n, extra int, seed int64) bool {
			edges := smallGraph(n, extra, seed)
			_, tk, errK := prim_kruskal.Kruskal(n, edges)
			_, tp, errP := prim_kruskal.Prim(n, edges, 0)
			return errK == nil && errP == nil && tk == tp
		},
		gen.IntRange(2, 8), gen.IntRange(0, 4), gen.Int64(),
	))

	properties.TestingRun(t)
}
