// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/graphsim/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls on distinct pairs
// all land in the incidence list of the hub vertex.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(v int) {
			defer wg.Done()
			if _, err := g.AddEdge(0, v, int64(v)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, deg)
}

// TestConcurrentNeighborsAndClone runs readers against a writer to surface
// races under -race; it asserts only final consistency.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	const rounds = 100
	g := core.NewGraph(rounds + 1)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			_, _ = g.AddEdge(0, i, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = g.Neighbors(0)
			_ = g.Clone()
		}
	}()
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
