package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/gridgraph"
)

// gridNodes lays out w×h nodes in row-major order with elevation = 10·(id+1)
// and risk = 0.1·(id+1).
func gridNodes(w, h int) []core.Node {
	nodes := make([]core.Node, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := len(nodes)
			nodes = append(nodes, core.Node{
				ID:        id,
				X:         x,
				Y:         y,
				Elevation: 10 * float64(id+1),
				RiskScore: 0.1 * float64(id+1),
			})
		}
	}

	return nodes
}

func pairs(edges []core.Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.U, e.V}
	}

	return out
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestBuildGraph_Errors verifies rejection of empty grids and non-dense ids.
func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		nodes []core.Node
		opts  gridgraph.GridOptions
		err   error
	}{
		{"ZeroWidth", gridNodes(1, 1), gridgraph.DefaultGridOptions(0, 1), gridgraph.ErrEmptyGrid},
		{"ZeroHeight", gridNodes(1, 1), gridgraph.DefaultGridOptions(1, 0), gridgraph.ErrEmptyGrid},
		{"SparseID", []core.Node{{ID: 0}, {ID: 2}}, gridgraph.DefaultGridOptions(2, 1), gridgraph.ErrNodeID},
		{"DuplicateID", []core.Node{{ID: 0}, {ID: 0, X: 1}}, gridgraph.DefaultGridOptions(2, 1), gridgraph.ErrNodeID},
		{"NegativeID", []core.Node{{ID: -1}}, gridgraph.DefaultGridOptions(1, 1), gridgraph.ErrNodeID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.BuildGraph(tc.nodes, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("BuildGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Adjacency and generation order
//----------------------------------------------------------------------------//

// TestBuildGraph_Conn4Order checks the exact generation order on a 2×2 grid.
//
//	0 1
//	2 3
func TestBuildGraph_Conn4Order(t *testing.T) {
	opts := gridgraph.DefaultGridOptions(2, 2)
	opts.Conn = gridgraph.Conn4
	edges, err := gridgraph.BuildGraph(gridNodes(2, 2), opts)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, pairs(edges))
}

// TestBuildGraph_Conn8Order checks that diagonals follow the orthogonal offsets per node.
func TestBuildGraph_Conn8Order(t *testing.T) {
	edges, err := gridgraph.BuildGraph(gridNodes(2, 2), gridgraph.DefaultGridOptions(2, 2))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 3}, {1, 2}, {2, 3}}, pairs(edges))
}

// TestBuildGraph_EdgeCounts compares against closed-form grid edge counts.
func TestBuildGraph_EdgeCounts(t *testing.T) {
	for _, dim := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 3}, {20, 20}, {7, 4}} {
		w, h := dim[0], dim[1]
		nodes := gridNodes(w, h)

		opts := gridgraph.DefaultGridOptions(w, h)
		opts.Conn = gridgraph.Conn4
		e4, err := gridgraph.BuildGraph(nodes, opts)
		require.NoError(t, err)
		want4 := w*(h-1) + h*(w-1)
		assert.Len(t, e4, want4, "Conn4 %dx%d", w, h)

		opts.Conn = gridgraph.Conn8
		e8, err := gridgraph.BuildGraph(nodes, opts)
		require.NoError(t, err)
		assert.Len(t, e8, want4+2*(w-1)*(h-1), "Conn8 %dx%d", w, h)
	}
}

// TestBuildGraph_Canonical verifies U < V and no duplicate pairs.
func TestBuildGraph_Canonical(t *testing.T) {
	edges, err := gridgraph.BuildGraph(gridNodes(6, 5), gridgraph.DefaultGridOptions(6, 5))
	require.NoError(t, err)
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		assert.Less(t, e.U, e.V)
		p := [2]int{e.U, e.V}
		assert.False(t, seen[p], "duplicate edge %v", p)
		seen[p] = true
	}
}

// TestBuildGraph_ShuffledInput checks that input order does not change output order.
func TestBuildGraph_ShuffledInput(t *testing.T) {
	nodes := gridNodes(3, 3)
	rev := make([]core.Node, len(nodes))
	for i, n := range nodes {
		rev[len(nodes)-1-i] = n
	}
	opts := gridgraph.DefaultGridOptions(3, 3)
	a, err := gridgraph.BuildGraph(nodes, opts)
	require.NoError(t, err)
	b, err := gridgraph.BuildGraph(rev, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestBuildGraph_MissingCell skips neighbors with no node at the coordinate.
func TestBuildGraph_MissingCell(t *testing.T) {
	// 2×2 grid with (1,1) absent.
	nodes := []core.Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 0}, {ID: 2, X: 0, Y: 1}}
	opts := gridgraph.DefaultGridOptions(2, 2)
	opts.Conn = gridgraph.Conn4
	edges, err := gridgraph.BuildGraph(nodes, opts)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, pairs(edges))
}

//----------------------------------------------------------------------------//
// Weights
//----------------------------------------------------------------------------//

// TestEdgeWeight computes a diagonal weight by hand.
func TestEdgeWeight(t *testing.T) {
	u := core.Node{ID: 0, X: 0, Y: 0, Elevation: 10, RiskScore: 0.1}
	v := core.Node{ID: 3, X: 1, Y: 1, Elevation: 40, RiskScore: 0.4}
	w := gridgraph.DefaultWeights()

	want := 30 + 0.3 + 0.5*math.Sqrt2
	assert.InDelta(t, want, gridgraph.EdgeWeight(u, v, w), 1e-12)
	assert.Equal(t, gridgraph.EdgeWeight(u, v, w), gridgraph.EdgeWeight(v, u, w))
}

// TestEdgeWeight_Coefficients isolates each term, including a negative coefficient.
func TestEdgeWeight_Coefficients(t *testing.T) {
	u := core.Node{X: 0, Y: 0, Elevation: 5, RiskScore: 0.5}
	v := core.Node{X: 0, Y: 1, Elevation: 2, RiskScore: 0.25}

	assert.InDelta(t, 3.0, gridgraph.EdgeWeight(u, v, gridgraph.Weights{Elevation: 1}), 1e-12)
	assert.InDelta(t, 0.25, gridgraph.EdgeWeight(u, v, gridgraph.Weights{Risk: 1}), 1e-12)
	assert.InDelta(t, 2.0, gridgraph.EdgeWeight(u, v, gridgraph.Weights{Distance: 2}), 1e-12)
	assert.InDelta(t, -3.0, gridgraph.EdgeWeight(u, v, gridgraph.Weights{Elevation: -1}), 1e-12)
}

// TestOffsets_Symmetric verifies every offset's opposite is present.
func TestOffsets_Symmetric(t *testing.T) {
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		offs := gridgraph.Offsets(conn)
		set := make(map[[2]int]bool, len(offs))
		for _, d := range offs {
			set[d] = true
		}
		for _, d := range offs {
			assert.True(t, set[[2]int{-d[0], -d[1]}], "%v missing opposite of %v", conn, d)
		}
	}
	assert.Len(t, gridgraph.Offsets(gridgraph.Conn4), 4)
	assert.Len(t, gridgraph.Offsets(gridgraph.Conn8), 8)
	assert.Equal(t, gridgraph.Conn8, gridgraph.ConnFromDiagonals(true))
	assert.Equal(t, gridgraph.Conn4, gridgraph.ConnFromDiagonals(false))
}
