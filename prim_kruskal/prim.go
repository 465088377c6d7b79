// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min‐heap over a dense edge list.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/floodmst/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph over
// vertices 0..numNodes-1 by growing outwards from root using a min‐heap.
//
// Ties are broken by input edge position, so results are deterministic. The
// edge list differs in order from Kruskal's but the total weight is equal.
//
// Error Conditions:
//   - ErrNodeCount    : numNodes < 0.
//   - ErrEdgeEndpoint : an endpoint lies outside 0..numNodes-1.
//   - ErrDisconnected : numNodes == 0, or the tree cannot reach every vertex.
//   - ErrRoot         : root outside 0..numNodes-1.
//
// Steps:
//  1. Validate and build adjacency lists (edge positions per vertex).
//  2. Mark root visited; push its incident edges.
//  3. Pop the lightest edge; skip it if both ends are visited; otherwise take
//     it, visit the new endpoint and push that endpoint's edges.
//  4. If fewer than numNodes-1 edges were taken → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(numNodes int, edges []core.Edge, root int) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := validateEdges(numNodes, edges); err != nil {
		return nil, 0, err
	}
	if numNodes == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= numNodes {
		return nil, 0, ErrRoot
	}
	if numNodes == 1 {
		return []core.Edge{}, 0, nil
	}

	adj := make([][]int, numNodes)
	for i, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	// 2. Seed the heap from root.
	visited := make([]bool, numNodes)
	mst := make([]core.Edge, 0, numNodes-1)
	var totalWeight float64
	pq := &edgePQ{edges: edges}
	heap.Init(pq)

	visit := func(v int) {
		visited[v] = true
		for _, i := range adj[v] {
			e := edges[i]
			if !visited[e.U] || !visited[e.V] {
				heap.Push(pq, i)
			}
		}
	}
	visit(root)

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < numNodes-1 {
		e := edges[heap.Pop(pq).(int)]
		var next int
		switch {
		case !visited[e.U]:
			next = e.U
		case !visited[e.V]:
			next = e.V
		default:
			// Both ends already in the tree.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		visit(next)
	}

	// 4. Spanning check.
	if len(mst) < numNodes-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min‐heap of edge positions,
// ordered by (Weight, position).
type edgePQ struct {
	edges []core.Edge
	items []int
}

// Len returns the number of queued edges.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by input position.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if wa, wb := pq.edges[a].Weight, pq.edges[b].Weight; wa != wb {
		return wa < wb
	}

	return a < b
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends an edge position. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
