// Package floodmst groups flood-risk grid cells into contiguous zones using
// minimum spanning tree clustering.
//
// 🚀 What is floodmst?
//
//	A small pipeline over a Width×Height grid of cells, each with an
//	elevation and a risk score:
//		• Graph: 4- or 8-neighbour grid edges with a composite weight
//		• MST: Kruskal over a Union-Find with path compression & union by rank
//		• Clustering: cut the k-1 heaviest MST edges to get k zones
//		• Stats: per-zone node count, mean elevation and mean risk
//
// Under the hood, everything is organized under these packages:
//
//	core/         — Node, Edge, CutEdge, Labels & ClusterStats
//	dsu/          — disjoint-set forest
//	gridgraph/    — grid adjacency & edge weights
//	prim_kruskal/ — minimum spanning tree (Kruskal, Prim for cross-checks)
//	clustering/   — MST cutting & zone statistics
//	pipeline/     — end-to-end Run, params validation & result store
//	nodesource/   — synthetic terrain generator
//	config/       — YAML + environment configuration
//	metrics/      — Prometheus collectors
//	server/       — HTTP API
//
// Quick ASCII example (2×2 grid, k=2):
//
//	0───1
//	│   │      MST keeps 3 edges; cutting the heaviest leaves 2 zones
//	2───3
//
// Run the service with:
//
//	go run ./cmd/floodmst -config config/example.yaml
package floodmst
