// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	minCycleNodes  = 3
)

// Complete builds K_n (n ≥ 1). Edges are emitted i asc, j asc with i < j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(base+i, base+j, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3) with edges i→(i+1) mod n in ascending i.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if _, err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
