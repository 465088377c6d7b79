package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/floodmst/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	edges := buildMediumGraph(500, 2000) // pre‐build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(500, edges)
	}
}

// BenchmarkPrim measures performance on the same graph, rooted at vertex 0.
func BenchmarkPrim(b *testing.B) {
	edges := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(500, edges, 0)
	}
}
