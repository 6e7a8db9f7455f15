// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex states during a traversal.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // finished
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit is invoked after all descendants of a vertex have been
	// explored (post-order), before it is appended to Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion depth.
	// 0 visits only the start vertex. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor is called for each (from, to) step before recursing.
	// Return false to skip the neighbor.
	FilterNeighbor func(from, to int) bool

	// FullTraversal restarts from every unvisited vertex in ascending
	// order, covering disconnected components.
	FullTraversal bool

	err error
}

// DefaultOptions returns a background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth; limit must be ≥ 0.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every step for which fn returns false.
// Skips are counted in DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal; the start vertex is ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth maps each visited vertex to its tree depth.
	Depth map[int]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots are absent.
	Parent map[int]int

	// Root maps each visited vertex to the root of its DFS tree.
	Root map[int]int

	// Roots lists tree roots in the order they were started.
	Roots []int

	// SkippedNeighbors counts steps rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *DFSResult) Visited(v int) bool {
	_, ok := r.Depth[v]

	return ok
}
