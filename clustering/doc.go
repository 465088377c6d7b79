// Package clustering partitions grid nodes into contiguous clusters by
// cutting the heaviest edges of their minimum spanning tree, and summarizes
// each resulting cluster.
//
//   - ClusterFromMST(numNodes, mst, k) → labels, cut-annotated edges
//   - ComputeClusterStats(nodes, labels) → per-cluster count and averages
//
// Disconnected input: when the MST is a spanning forest, cutting k-1 edges
// leaves more than k clusters. ClusterFromMST does not treat that as an
// error; callers that need exactly k use prim_kruskal.Spans beforehand (the
// pipeline package does this under WithRequireConnected).
package clustering
