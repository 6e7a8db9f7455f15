package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// FindCycle reports whether the undirected graph g contains a cycle and, if
// so, returns one as a closed vertex walk [v0 v1 … vk v0].
//
// The search colors vertices White/Gray/Black and treats a step to a Gray
// vertex other than the tree parent as a back edge. core.Graph never holds
// loops or parallel edges, so every back edge closes a cycle of length ≥ 3.
// A nil graph is cycle-free.
//
// Complexity: O(V + E).
func FindCycle(g *core.Graph) (bool, []int, error) {
	if g == nil {
		return false, nil, nil
	}

	n := g.VertexCount()
	f := &cycleFinder{
		graph: g,
		state: make([]int, n),
		path:  make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v, -1); err != nil {
			return false, nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if f.cycle != nil {
			return true, f.cycle, nil
		}
	}

	return false, nil, nil
}

// HasCycle reports whether g contains a cycle.
func HasCycle(g *core.Graph) (bool, error) {
	found, _, err := FindCycle(g)

	return found, err
}

type cycleFinder struct {
	graph *core.Graph
	state []int
	path  []int
	cycle []int
}

func (f *cycleFinder) visit(v, parent int) error {
	f.state[v] = Gray
	f.path = append(f.path, v)

	nbs, err := f.graph.NeighborIDs(v)
	if err != nil {
		return err
	}
	for _, u := range nbs {
		switch {
		case u == parent:
			continue
		case f.state[u] == Gray:
			f.cycle = f.closeCycle(u)
			return nil
		case f.state[u] == White:
			if err = f.visit(u, v); err != nil || f.cycle != nil {
				return err
			}
		}
	}

	f.state[v] = Black
	f.path = f.path[:len(f.path)-1]

	return nil
}

// closeCycle cuts the stack at the Gray ancestor u and closes the walk.
func (f *cycleFinder) closeCycle(u int) []int {
	start := len(f.path) - 1
	for f.path[start] != u {
		start--
	}
	cycle := make([]int, 0, len(f.path)-start+1)
	cycle = append(cycle, f.path[start:]...)

	return append(cycle, u)
}
