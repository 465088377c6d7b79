package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/floodmst/core"
)

// EdgeWeight returns the composite weight of the pair (u,v):
//
//	w.Elevation·|Δelevation| + w.Risk·|Δrisk| + w.Distance·‖(Δx,Δy)‖₂
//
// It is symmetric: EdgeWeight(u,v,w) == EdgeWeight(v,u,w).
// Complexity: O(1).
func EdgeWeight(u, v core.Node, w Weights) float64 {
	dElev := math.Abs(u.Elevation - v.Elevation)
	dRisk := math.Abs(u.RiskScore - v.RiskScore)
	dx := float64(u.X - v.X)
	dy := float64(u.Y - v.Y)
	dist := math.Sqrt(dx*dx + dy*dy)

	return w.Elevation*dElev + w.Risk*dRisk + w.Distance*dist
}

// BuildGraph returns the edges of the grid graph over nodes in generation
// order: nodes by ascending id, and for each node its offsets in the order
// given by Offsets(opts.Conn). An edge is emitted only from its lower-id
// endpoint, so the reverse visit of the same pair is skipped.
//
// Node ids must be exactly 0..len(nodes)-1 in any order (ErrNodeID otherwise).
// Neighbor coordinates inside the grid but with no node are skipped. If two
// nodes share a coordinate, the lower id owns it.
//
// Errors: ErrEmptyGrid if Width or Height < 1; ErrNodeID for sparse or repeated ids.
// Complexity: O(W·H + N·d) time, O(W·H + E) memory (d = 4 or 8).
func BuildGraph(nodes []core.Node, opts GridOptions) ([]core.Edge, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("BuildGraph: width=%d, height=%d: %w", opts.Width, opts.Height, ErrEmptyGrid)
	}

	// Order nodes by id; ids double as slice positions.
	byID := make([]core.Node, len(nodes))
	seen := make([]bool, len(nodes))
	for _, n := range nodes {
		if n.ID < 0 || n.ID >= len(nodes) || seen[n.ID] {
			return nil, fmt.Errorf("BuildGraph: node id %d: %w", n.ID, ErrNodeID)
		}
		seen[n.ID] = true
		byID[n.ID] = n
	}

	// Coordinate index, row-major; -1 marks an empty cell.
	index := make([]int, opts.Width*opts.Height)
	for i := range index {
		index[i] = -1
	}
	for _, n := range byID {
		if !inBounds(n.X, n.Y, opts.Width, opts.Height) {
			continue
		}
		if slot := &index[n.Y*opts.Width+n.X]; *slot < 0 {
			*slot = n.ID
		}
	}

	offsets := Offsets(opts.Conn)
	edges := make([]core.Edge, 0, len(byID)*len(offsets)/2)
	for _, u := range byID {
		for _, d := range offsets {
			nx, ny := u.X+d[0], u.Y+d[1]
			if !inBounds(nx, ny, opts.Width, opts.Height) {
				continue
			}
			vID := index[ny*opts.Width+nx]
			if vID < 0 || u.ID >= vID {
				continue
			}
			edges = append(edges, core.Edge{
				U:      u.ID,
				V:      vID,
				Weight: EdgeWeight(u, byID[vID], opts.Weights),
			})
		}
	}

	return edges, nil
}

// inBounds reports whether (x,y) lies in [0,w)×[0,h).
func inBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
