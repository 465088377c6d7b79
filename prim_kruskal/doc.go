// Package prim_kruskal computes minimum spanning trees over the dense edge
// lists produced by gridgraph: Kruskal’s algorithm as the primary engine and
// Prim’s algorithm as an independent alternative.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E) with V = {0..n-1}, an MST
//     is a subset T ⊆ E that connects every vertex with minimum total weight.
//   - Cutting the heaviest MST edges splits the tree into contiguous clusters
//     (see package clustering); that is why the MST is the backbone here.
//
// Algorithms Provided
//
//   - Kruskal(numNodes, edges) ([]core.Edge, float64, error)
//
//   - Strategy: sort edges by weight, then union endpoints with a fresh
//     dsu.DSU, skipping edges whose endpoints are already joined. Stop at
//     numNodes-1 edges.
//
//   - Determinism: equal weights keep input order. The sort is stable and also
//     carries the input position as an explicit secondary key.
//
//   - Disconnected input: returns a minimum spanning forest (< numNodes-1
//     edges) without error.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(numNodes, edges, root) ([]core.Edge, float64, error)
//
//   - Strategy: grow a single tree from root with a min-heap of edge positions.
//
//   - Disconnected input: ErrDisconnected.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Error Conditions
//
//   - ErrNodeCount: numNodes < 0.
//   - ErrEdgeEndpoint: an endpoint outside 0..numNodes-1.
//   - ErrRoot (Prim only): root outside 0..numNodes-1.
//   - ErrDisconnected (Prim only, and for callers using Spans): no spanning tree.
//   - ErrUnknownMethod (Compute only): unsupported MSTOptions.Method.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
