// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// NewAdjacency exports g as a symmetric n×n Dense where cell (u,v) holds the
// edge capacity (weight 0 read as core.DefaultWeight) or 1 when weighted is
// false. Absent edges are 0; the diagonal is always 0 since core forbids loops.
//
// Complexity: O(V² + E).
func NewAdjacency(g *core.Graph, weighted bool) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacency: %w", err)
	}
	for _, e := range g.Edges() {
		v := 1.0
		if weighted {
			v = float64(e.Capacity())
		}
		m.data[e.From*n+e.To] = v
		m.data[e.To*n+e.From] = v
	}

	return m, nil
}
