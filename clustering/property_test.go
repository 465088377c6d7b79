package clustering_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/floodmst/clustering"
	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/gridgraph"
	"github.com/katalvlaran/floodmst/prim_kruskal"
)

// randomGrid returns w×h nodes with seeded elevation and risk.
func randomGrid(w, h int, seed int64) []core.Node {
	r := rand.New(rand.NewSource(seed))
	nodes := make([]core.Node, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nodes = append(nodes, core.Node{
				ID:        len(nodes),
				X:         x,
				Y:         y,
				Elevation: float64(r.Intn(10)) * 10,
				RiskScore: float64(r.Intn(10)) / 10,
			})
		}
	}

	return nodes
}

// TestClusteringProperties checks cluster count, label range, node-0 placement
// and stats completeness on random connected grids.
func TestClusteringProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("connected MST yields exactly k clusters and complete stats", prop.ForAll(
		func(w, h int, diag bool, seed int64, kFrac float64) bool {
			nodes := randomGrid(w, h, seed)
			n := len(nodes)
			k := 1 + int(kFrac*float64(n-1))

			opts := gridgraph.DefaultGridOptions(w, h)
			opts.Conn = gridgraph.ConnFromDiagonals(diag)
			edges, err := gridgraph.BuildGraph(nodes, opts)
			if err != nil {
				return false
			}
			mst, _, err := prim_kruskal.Kruskal(n, edges)
			if err != nil || len(mst) != n-1 {
				return false
			}
			labels, annotated, err := clustering.ClusterFromMST(n, mst, k)
			if err != nil || len(labels) != n || labels[0] != 0 {
				return false
			}

			cut, distinct := 0, make(map[int]bool)
			for _, e := range annotated {
				if e.Cut {
					cut++
				}
			}
			for _, c := range labels {
				if c < 0 || c >= k {
					return false
				}
				distinct[c] = true
			}
			if cut != k-1 || len(distinct) != k {
				return false
			}

			stats, err := clustering.ComputeClusterStats(nodes, labels)
			if err != nil || len(stats) != k {
				return false
			}
			total := 0
			for i, s := range stats {
				if s.ClusterID != i || s.NumNodes == 0 {
					return false
				}
				total += s.NumNodes
			}
			return total == n
		},
		gen.IntRange(1, 7), gen.IntRange(1, 7), gen.Bool(), gen.Int64(), gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
