// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/HasEdge/
//       GetEdge/EdgeBetween/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc, i.e. insertion order.
//   - Edge IDs are a monotonic counter starting at 1.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
// AI-HINT (file):
//   - Weight 0 stores an unweighted edge; read it through Edge.Capacity().
//   - Removing an edge keeps the relative order of the remaining incident edges.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v} with the given weight and returns its ID.
//
// Steps:
//  1. Validate weight ≥ 0 and u != v.
//  2. Lock mu, validate both endpoints exist.
//  3. Reject a second edge between the same endpoints.
//  4. Allocate the next ID, store the edge, append it to both incidence lists.
//
// Errors: ErrBadWeight, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) (uint64, error) {
	if weight < 0 {
		return 0, ErrBadWeight
	}
	if u == v {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return 0, ErrVertexNotFound
	}
	key := newPairKey(u, v)
	if _, dup := g.pairs[key]; dup {
		return 0, ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: u, To: v, Weight: weight}
	g.edges[e.ID] = e
	g.pairs[key] = e.ID
	g.incident[u] = append(g.incident[u], e.ID)
	g.incident[v] = append(g.incident[v], e.ID)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Errors: ErrEdgeNotFound.
// Complexity: O(deg(u)+deg(v)).
func (g *Graph) RemoveEdge(id uint64) error {
	// AI-HINT: Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeLocked(e)

	return nil
}

// RemoveEdgeBetween deletes the edge joining u and v, in either orientation.
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(deg(u)+deg(v)).
func (g *Graph) RemoveEdgeBetween(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return ErrVertexNotFound
	}
	id, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeLocked(g.edges[id])

	return nil
}

// removeLocked unlinks e from the catalog, the pair index and both incidence lists.
// Caller must hold mu for writing.
func (g *Graph) removeLocked(e *Edge) {
	delete(g.edges, e.ID)
	delete(g.pairs, newPairKey(e.From, e.To))
	g.incident[e.From] = withoutEdge(g.incident[e.From], e.ID)
	g.incident[e.To] = withoutEdge(g.incident[e.To], e.ID)
}

// withoutEdge returns ids minus id, preserving order. A fresh slice is
// returned so slices handed out earlier never observe the removal.
func withoutEdge(ids []uint64, id uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}

	return out
}

// HasEdge reports whether an edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[newPairKey(u, v)]

	return ok
}

// GetEdge returns the edge with the given ID. The *Edge is read-only by convention.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(id uint64) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge joining u and v.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// Edges returns all edges sorted by ID (insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
