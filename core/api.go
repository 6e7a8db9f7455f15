// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: Name and Stats.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Name        string
	VertexCount int
	EdgeCount   int

	// TotalCapacity sums Edge.Capacity() over all edges.
	TotalCapacity int64

	// MaxDegree is the largest incidence list length (0 for an empty graph).
	MaxDegree int
}

// Name returns the label given via WithName, or "".
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// Stats produces a read-only snapshot of counts and capacity totals.
//
// Complexity: Time O(n + E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Name:        g.name,
		VertexCount: len(g.incident),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		stats.TotalCapacity += e.Capacity()
	}
	for _, ids := range g.incident {
		if len(ids) > stats.MaxDegree {
			stats.MaxDegree = len(ids)
		}
	}

	return &stats
}
