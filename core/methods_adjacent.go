// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both follow the incidence order of v, i.e. the order edges were added.
// Concurrency:
//   - Read lock on mu; returned slices are freshly allocated.

package core

// Neighbors returns the edges incident to v in insertion order.
//
// Implementation:
//   - Stage 1: Acquire mu read lock and validate v.
//   - Stage 2: Map incident edge IDs to *Edge in incidence order.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.incident[v]))
	for _, id := range g.incident[v] {
		out = append(out, g.edges[id])
	}

	return out, nil
}

// NeighborIDs returns the vertices adjacent to v in insertion order of the
// connecting edges. There are no duplicates since multi-edges are rejected.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	edges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(v)
	}

	return ids, nil
}
