package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphsim/core"
)

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest vertex, so isolated
// vertices appear as singletons.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]int, error) {
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("dfs: Components: %w", err)
	}

	index := make(map[int]int, len(res.Roots))
	comps := make([][]int, len(res.Roots))
	for i, r := range res.Roots {
		index[r] = i
	}
	for _, v := range res.Order {
		i := index[res.Root[v]]
		comps[i] = append(comps[i], v)
	}
	for _, c := range comps {
		sort.Ints(c)
	}

	return comps, nil
}

// CircuitRank returns |E| - |V| + c, the number of independent cycles of g
// (c = number of components). It is 0 exactly when g is a forest.
func CircuitRank(g *core.Graph) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return g.EdgeCount() - g.VertexCount() + len(comps), nil
}
