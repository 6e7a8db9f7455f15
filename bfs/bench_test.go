package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphsim/bfs"
	"github.com/katalvlaran/graphsim/core"
)

// BenchmarkBFS_Grid measures a full traversal of a 50×50 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 50
	g := core.NewGraph(side * side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			v := i*side + j
			if j+1 < side {
				_, _ = g.AddEdge(v, v+1, 1)
			}
			if i+1 < side {
				_, _ = g.AddEdge(v, v+side, 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
