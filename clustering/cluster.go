package clustering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/dsu"
)

// ClusterFromMST splits a minimum spanning tree over vertices 0..numNodes-1
// into k clusters by cutting its k-1 heaviest edges.
//
// Steps:
//  1. Validate 1 ≤ k ≤ numNodes (ErrInvalidClusterCount otherwise).
//  2. Order the MST edges by descending weight. Equal weights keep their
//     order in mst, so the earliest of them is cut first.
//  3. Mark the first k-1 edges of that order as cut.
//  4. Union the endpoints of every non-cut edge in a fresh DSU.
//  5. Scan node ids ascending; each new root gets the next cluster id.
//
// The returned edges follow the descending order of step 2.
//
// If mst is a single tree on numNodes vertices the result holds exactly k
// clusters, numbered 0..k-1, and node 0 is always in cluster 0. If mst is a
// spanning forest with c trees, the result holds min(c+k-1, numNodes)
// clusters, which can exceed k; NumClusters reports the actual count.
//
// Complexity: O(M log M + N·α(N)).
func ClusterFromMST(numNodes int, mst []core.Edge, k int) (core.Labels, []core.CutEdge, error) {
	// 1. Validate.
	if k < 1 || k > numNodes {
		return nil, nil, fmt.Errorf("k=%d with %d nodes (want 1 ≤ k ≤ %d): %w",
			k, numNodes, numNodes, ErrInvalidClusterCount)
	}

	// 2. Descending by weight; ties keep MST order.
	order := make([]int, len(mst))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := mst[order[a]].Weight, mst[order[b]].Weight
		if wa != wb {
			return wa > wb
		}
		return order[a] < order[b]
	})

	// 3. Annotate.
	cuts := k - 1
	annotated := make([]core.CutEdge, len(order))
	for rank, i := range order {
		annotated[rank] = core.CutEdge{Edge: mst[i], Cut: rank < cuts}
	}

	// 4. Reconnect the surviving edges.
	sets := dsu.New(numNodes)
	for _, e := range annotated {
		if !e.Cut {
			sets.Union(e.U, e.V)
		}
	}

	// 5. Relabel roots in first-seen order.
	labels := make(core.Labels, numNodes)
	clusterOf := make(map[int]int, k)
	for id := 0; id < numNodes; id++ {
		root := sets.Find(id)
		c, ok := clusterOf[root]
		if !ok {
			c = len(clusterOf)
			clusterOf[root] = c
		}
		labels[id] = c
	}

	return labels, annotated, nil
}

// NumClusters returns the number of distinct cluster ids in labels,
// assuming ids are 0-based and contiguous as ClusterFromMST produces them.
func NumClusters(labels core.Labels) int {
	n := 0
	for _, c := range labels {
		if c+1 > n {
			n = c + 1
		}
	}

	return n
}
