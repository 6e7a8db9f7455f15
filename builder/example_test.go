package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
)

// ExampleRandomCapacity builds the default-sized comparison graph.
func ExampleRandomCapacity() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithName(builder.GNMName(20, 40))},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithMaxCapacity(5)},
		builder.RandomCapacity(20, 40),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	st := g.Stats()
	fmt.Println(st.Name, st.VertexCount, st.EdgeCount)
	// Output:
	// gnm_random_graph(20,40) 20 40
}

// ExampleCycle composes a weighted cycle.
func ExampleCycle() {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Cycle(3))
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d:%d ", e.From, e.To, e.Weight)
	}
	fmt.Println()
	// Output:
	// 0-1:2 1-2:2 2-0:2
}
