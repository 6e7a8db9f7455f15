// Package dijkstra defines options, results and errors for Dijkstra's
// shortest-path search over a core.Graph, using edge capacities as lengths.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNoPath is returned by PathTo and ShortestPath for an unreached target.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero or negative InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the Dist value of a vertex the search never reached.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are not explored (default no cap).
// InfEdgeThreshold – edges whose capacity is ≥ this are impassable (default none).
// Target           – if ≥ 0, stop once this vertex is finalized.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
	Target           int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options with no distance cap, no impassable
// edges and no target.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Target:           -1,
	}
}

// WithMaxDistance caps exploration at max. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with capacity ≥ threshold as walls.
// Panics on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithTarget stops the search as soon as target's distance is final.
// A negative target keeps the full single-source search.
func WithTarget(target int) Option {
	return func(o *Options) { o.Target = target }
}

// Result holds per-vertex distances and shortest-path-tree parents,
// indexed by vertex. Prev is -1 for the source and unreached vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Reached reports whether v received a finite distance.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo rebuilds the source→v path from Prev.
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, v)
	}
	var path []int
	for cur := v; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
