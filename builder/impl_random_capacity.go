// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

const methodRandomCapacity = "RandomCapacity"

// MaxEdges is the number of edges of the simple undirected complete graph K_n.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// RandomCapacity returns a Constructor for a uniform G(n,m) undirected graph:
// m distinct edges are drawn by sampling endpoint pairs and rejecting loops
// and duplicates. Every edge gets a capacity uniform in [1, maxCap].
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 yields a lone vertex.
//   - m ≥ 0 (else ErrBadEdgeCount); m ≥ MaxEdges(n) yields K_n.
//   - cfg.rng must be set whenever an edge is drawn (else ErrNeedRandSource).
//
// Complexity: expected O(m · MaxEdges/(MaxEdges-m)) draws; O(n²) when complete.
func RandomCapacity(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomCapacity, n, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d: %w", methodRandomCapacity, m, ErrBadEdgeCount)
		}
		limit := MaxEdges(n)
		if m > limit {
			m = limit
		}
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCapacity, ErrNeedRandSource)
		}

		base := addVertices(g, n)
		capFn := UniformCapacityFn(cfg.maxCap)

		if m == limit {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if _, err := g.AddEdge(base+i, base+j, capFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomCapacity, base+i, base+j, err)
					}
				}
			}

			return nil
		}

		for added := 0; added < m; {
			u := base + cfg.rng.Intn(n)
			v := base + cfg.rng.Intn(n)
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if _, err := g.AddEdge(u, v, capFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomCapacity, u, v, err)
			}
			added++
		}

		return nil
	}
}
