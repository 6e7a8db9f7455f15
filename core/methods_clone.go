// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps edge IDs and incidence order, so algorithms behave identically
//     on the original and the copy.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// CloneEmpty returns a Graph with the same name and vertex count but no edges.
// Complexity: O(n).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return NewGraph(len(g.incident), WithName(g.name))
}

// Clone returns a deep copy of g: vertices, edges (same IDs), pair index and
// incidence order. The edge ID counter is carried over so AddEdge on the clone
// never collides with copied IDs.
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(len(g.incident), WithName(g.name))
	c.nextEdgeID = g.nextEdgeID
	for id, e := range g.edges {
		c.edges[id] = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
	}
	for k, id := range g.pairs {
		c.pairs[k] = id
	}
	for v, ids := range g.incident {
		c.incident[v] = append([]uint64(nil), ids...)
	}

	return c
}

// Clear removes every edge while keeping the vertex count and name.
// The edge ID counter restarts at 1.
// Complexity: O(n).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = make(map[uint64]*Edge)
	g.pairs = make(map[pairKey]uint64)
	for v := range g.incident {
		g.incident[v] = nil
	}
	g.nextEdgeID = 0
}
