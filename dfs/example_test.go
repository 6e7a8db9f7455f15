package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/dfs"
)

// ExampleComponents splits a graph with a triangle, an edge and an
// isolated vertex.
func ExampleComponents() {
	g := core.NewGraph(6)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 0, 1)
	_, _ = g.AddEdge(3, 5, 1)

	comps, _ := dfs.Components(g)
	fmt.Println(comps)

	found, cycle, _ := dfs.FindCycle(g)
	fmt.Println(found, cycle)
	// Output:
	// [[0 1 2] [3 5] [4]]
	// true [0 1 2 0]
}
