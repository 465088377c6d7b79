// Package core defines the value types shared by every stage of the flood
// clustering pipeline: grid nodes, undirected weighted edges, cut-annotated
// MST edges, cluster labels and per-cluster statistics.
//
// All types are flat records of primitive fields. They carry no pointers into
// internal structures, so hosts can serialize them directly and share them
// across goroutines once built.
//
// Stage contracts:
//
//	gridgraph.BuildGraph      []Node        -> []Edge (generation order, U < V)
//	prim_kruskal.Kruskal      []Edge        -> []Edge (minimum spanning forest)
//	clustering.ClusterFromMST []Edge, k     -> Labels, []CutEdge
//	clustering.ComputeClusterStats          -> []ClusterStats (ascending ClusterID)
//
// Labels is a dense slice rather than a map because node ids are dense; it
// serializes to the {"node_id": cluster_id} object hosts expect.
package core
