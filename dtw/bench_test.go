package dtw_test

import (
	"testing"

	"github.com/katalvlaran/graphsim/dtw"
)

func benchmarkDistance(b *testing.B, n int, opts ...dtw.Option) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i], y[i] = float64(i), float64(n-i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Distance(x, y, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistance_Full(b *testing.B)    { benchmarkDistance(b, 256) }
func BenchmarkDistance_Rolling(b *testing.B) { benchmarkDistance(b, 256, dtw.WithRollingRows()) }
func BenchmarkDistance_Window(b *testing.B)  { benchmarkDistance(b, 256, dtw.WithWindow(16)) }
