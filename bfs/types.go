package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option mutates BFSOptions. A rejected value is remembered and BFS
// returns it before touching the graph.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one traversal.
type BFSOptions struct {
	Ctx context.Context

	// OnVisit runs as each vertex is dequeued; an error ends the search.
	OnVisit func(id int, depth int) error

	// MaxDepth bounds expansion; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor returning false hides the edge curr-neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// Target, if ≥ 0, ends the search as soon as that vertex is discovered.
	Target int

	err error
}

// DefaultOptions is an unbounded, unfiltered traversal of the start
// vertex's component under context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		Target:         -1,
	}
}

// WithContext makes the search observe ctx. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps vertices at depth <= d. Zero lifts the limit and a
// negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor installs an edge predicate.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the traversal once target has been discovered.
// Depth and Parent are complete for every vertex up to that point.
func WithTarget(target int) Option {
	return func(o *BFSOptions) {
		if target < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, target)
			return
		}
		o.Target = target
	}
}

// BFSResult is the search tree: Order lists vertices as dequeued, Depth
// holds hop counts from Start and Parent the tree predecessor.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether dest was discovered.
func (r *BFSResult) Reached(dest int) bool {
	_, ok := r.Depth[dest]

	return ok
}

// PathTo walks Parent back from dest and returns Start..dest,
// or ErrNoPath for an undiscovered vertex.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []int{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
