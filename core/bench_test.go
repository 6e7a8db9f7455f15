// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphsim/core"
)

// BenchmarkAddEdge measures inserting a star of b.N edges.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		_, _ = g.AddEdge(0, i, int64(i%5+1))
	}
}

// BenchmarkClone measures deep-copying a 200-vertex cycle.
func BenchmarkClone(b *testing.B) {
	const n = 200
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(i, (i+1)%n, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
