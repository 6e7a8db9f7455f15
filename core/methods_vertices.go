// File: methods_vertices.go
// Role: Vertex queries and growth: AddVertex/HasVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() is always 0..n-1 ascending.
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.

package core

// AddVertex appends one isolated vertex and returns its index (the old n).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.incident = append(g.incident, nil)

	return len(g.incident) - 1
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(v)
}

// hasVertexLocked is HasVertex for callers already holding mu.
func (g *Graph) hasVertexLocked(v int) bool {
	return v >= 0 && v < len(g.incident)
}

// VertexCount returns n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incident)
}

// Vertices returns the vertex indices 0..n-1 in ascending order.
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.incident))
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of edges incident to v.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.incident[v]), nil
}
