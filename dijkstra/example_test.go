package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/dijkstra"
)

// ExampleShortestPath prefers two light edges over one heavy edge.
func ExampleShortestPath() {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 2, 10)
	_, _ = g.AddEdge(0, 1, 3)
	_, _ = g.AddEdge(1, 2, 4)

	path, length, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(path, length)
	// Output:
	// [0 1 2] 7
}
