package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/bfs"
	"github.com/katalvlaran/graphsim/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid.
// Vertex i*3+j is cell (i, j); right edges are added before down edges.
func ExampleBFS() {
	g := core.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := i*3 + j
			if j+1 < 3 {
				_, _ = g.AddEdge(v, v+1, 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(v, v+3, 0)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleShortestPath picks the 3-hop route over the 4-hop one.
func ExampleShortestPath() {
	g := core.NewGraph(11)
	// long route 0-1-2-3-10
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 10}} {
		_, _ = g.AddEdge(e[0], e[1], 2)
	}
	// short route 0-4-5-10
	for _, e := range [][2]int{{0, 4}, {4, 5}, {5, 10}} {
		_, _ = g.AddEdge(e[0], e[1], 9)
	}
	// dead ends
	for _, e := range [][2]int{{2, 6}, {6, 7}, {3, 8}, {8, 9}} {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}

	p, err := bfs.ShortestPath(g, 0, 10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(p)
	// Output:
	// [0 4 5 10]
}
