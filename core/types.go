// Package core defines the capacity Graph used by every similarity heuristic:
// a fixed set of integer vertices 0..n-1 joined by undirected, weighted edges.
//
// All core APIs share one sync.RWMutex (mu) guarding the edge catalog and the
// per-vertex incidence lists, so a Graph may be read from several goroutines.
// Callers that mutate a Graph (pathdist drains edges) must own it exclusively.
//
// Errors:
//
//	ErrVertexNotFound      - vertex index outside 0..n-1.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - negative edge weight.
//	ErrLoopNotAllowed      - self-loop (u == v).
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultWeight is the capacity reported for an edge stored with weight 0
// ("unweighted"). Profiles and path sums read capacities, never raw zeros.
const DefaultWeight int64 = 1

// Edge is an undirected connection between two vertices.
//
// ID is unique within its Graph and grows monotonically, so sorting by ID
// reproduces insertion order. From/To keep the orientation given to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID uint64

	// From is the first endpoint passed to AddEdge.
	From int

	// To is the second endpoint passed to AddEdge.
	To int

	// Weight is the stored capacity; 0 means unweighted.
	Weight int64
}

// Capacity returns the effective weight of e: Weight, or DefaultWeight when
// the edge was added unweighted.
func (e *Edge) Capacity() int64 {
	if e.Weight == 0 {
		return DefaultWeight
	}

	return e.Weight
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, From is returned.
func (e *Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable label, e.g. "gnm_random_graph(20,40)".
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// pairKey is the normalized {min,max} endpoint pair used to reject parallel
// edges and to look edges up by endpoints in O(1).
type pairKey struct {
	u, v int
}

func newPairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// Graph is an undirected capacity graph over vertices 0..n-1.
//
// incident[v] lists the IDs of edges touching v in insertion order; this
// order drives profile construction and BFS tie-breaking, so it is part of
// the observable contract.
type Graph struct {
	mu sync.RWMutex // guards every field below

	name       string
	nextEdgeID uint64

	edges    map[uint64]*Edge   // edge ID → Edge
	pairs    map[pairKey]uint64 // {min,max} → edge ID
	incident [][]uint64         // vertex → incident edge IDs, insertion order
}

// NewGraph creates a Graph with n isolated vertices. A negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		edges:    make(map[uint64]*Edge),
		pairs:    make(map[pairKey]uint64),
		incident: make([][]uint64, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
