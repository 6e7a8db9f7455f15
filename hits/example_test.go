package hits_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/matrix"
)

// ExampleScore scores a two-node cycle.
func ExampleScore() {
	a, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	s, err := hits.Score(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("authority=%.4f hub=%.4f\n", s.Authority, s.Hub)
	// Output:
	// authority=[0.7071 0.7071] hub=[0.7071 0.7071]
}

// ExampleCompare compares a triangle with a relabeled copy of itself.
func ExampleCompare() {
	a, _ := matrix.NewFromRows([][]float64{{0, 2, 1}, {2, 0, 3}, {1, 3, 0}})
	b, _ := matrix.NewFromRows([][]float64{{0, 3, 2}, {3, 0, 1}, {2, 1, 0}})
	c, _ := hits.Compare(a, b)
	fmt.Println(c.Similar)
	// Output:
	// true
}
