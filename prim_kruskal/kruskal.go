// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// over a dense edge list, producing a minimum spanning forest when the graph is disconnected.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/dsu"
)

// Kruskal computes the minimum spanning forest of an undirected graph over
// vertices 0..numNodes-1. It uses a fresh disjoint-set with path compression
// and union by rank.
//
// Ordering:
//   - Edges are sorted by ascending Weight; equal weights keep their input
//     (generation) order, enforced by an explicit secondary key on the input index.
//   - The result lists accepted edges in acceptance order.
//
// A connected graph yields exactly numNodes-1 edges. A disconnected graph
// yields fewer, one tree per component; this is not an error here (see Spans
// and ErrDisconnected for callers that require a single tree).
//
// Error Conditions:
//   - ErrNodeCount    : numNodes < 0.
//   - ErrEdgeEndpoint : an endpoint lies outside 0..numNodes-1.
//
// Steps:
//  1. Validate numNodes and endpoints.
//  2. If numNodes ≤ 1, return the empty tree.
//  3. Sort edge positions by (Weight, position), skipping self-loops.
//  4. Union endpoints edge by edge; accepted edges join the result.
//  5. Stop once the result holds numNodes-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(numNodes int, edges []core.Edge) ([]core.Edge, float64, error) {
	// 1. Validate inputs.
	if err := validateEdges(numNodes, edges); err != nil {
		return nil, 0, err
	}

	// 2. Trivial trees.
	if numNodes <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect positions of non-loop edges and sort them.
	order := make([]int, 0, len(edges))
	for i, e := range edges {
		if e.U == e.V {
			// Self-loops cannot be part of a spanning tree.
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := edges[order[a]].Weight, edges[order[b]].Weight
		if wa != wb {
			return wa < wb
		}
		return order[a] < order[b]
	})

	// 4. Build the forest.
	var (
		sets        = dsu.New(numNodes)
		want        = numNodes - 1
		mst         = make([]core.Edge, 0, want)
		totalWeight float64
	)
	for _, i := range order {
		e := edges[i]
		if !sets.Union(e.U, e.V) {
			// Endpoints already connected; e would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 5. Complete spanning tree.
		if len(mst) == want {
			break
		}
	}

	return mst, totalWeight, nil
}
