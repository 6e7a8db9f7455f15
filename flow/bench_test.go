package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphsim/flow"
)

func benchmark(b *testing.B, alg flow.Algorithm) {
	g := randomGraph(rand.New(rand.NewSource(1)), 500, 0.02)
	opts := flow.DefaultOptions()
	opts.Algorithm = alg
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flow.MaxFlow(g, 0, 499, opts)
	}
}

func BenchmarkDinic(b *testing.B)         { benchmark(b, flow.Dinic) }
func BenchmarkEdmondsKarp(b *testing.B)   { benchmark(b, flow.EdmondsKarp) }
func BenchmarkFordFulkerson(b *testing.B) { benchmark(b, flow.FordFulkerson) }
