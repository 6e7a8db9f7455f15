package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// ExampleGraph builds a small capacity graph and inspects a vertex.
func ExampleGraph() {
	g := core.NewGraph(3, core.WithName("triangle"))
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 0) // unweighted, read as capacity 1
	_, _ = g.AddEdge(2, 0, 7)

	edges, _ := g.Neighbors(2)
	for _, e := range edges {
		fmt.Printf("%d-%d cap=%d\n", e.From, e.To, e.Capacity())
	}
	fmt.Println(g.Name(), g.EdgeCount())
	// Output:
	// 1-2 cap=1
	// 2-0 cap=7
	// triangle 3
}
