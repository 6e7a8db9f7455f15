// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphsim/core"
)

// Relabel returns a copy of g in which vertex i is renamed perm[i]. Edges keep
// their weights and are inserted in g's edge order. The copy is isomorphic to g.
func Relabel(g *core.Graph, perm []int) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Relabel: %w", ErrConstructFailed)
	}
	n := g.VertexCount()
	if len(perm) != n {
		return nil, fmt.Errorf("Relabel: len(perm)=%d, want %d: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("Relabel: perm %v: %w", perm, ErrBadPermutation)
		}
		seen[p] = true
	}

	out := core.NewGraph(n, core.WithName(g.Name()))
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(perm[e.From], perm[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("Relabel: %w", err)
		}
	}

	return out, nil
}

// Shuffled returns a Relabel of g under a random permutation drawn from rng,
// together with that permutation.
func Shuffled(g *core.Graph, rng *rand.Rand) (*core.Graph, []int, error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("Shuffled: %w", ErrNeedRandSource)
	}
	if g == nil {
		return nil, nil, fmt.Errorf("Shuffled: %w", ErrConstructFailed)
	}
	perm := rng.Perm(g.VertexCount())
	out, err := Relabel(g, perm)
	if err != nil {
		return nil, nil, err
	}

	return out, perm, nil
}
