package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/dfs"
)

func TestFindCycle_Triangle(t *testing.T) {
	found, cycle, err := dfs.FindCycle(forest(t))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 1, 2, 0}, cycle)
}

func TestFindCycle_Forest(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"chain":    chain(t, 6),
		"empty":    core.NewGraph(0),
		"isolated": core.NewGraph(4),
		"nil":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			found, cycle, err := dfs.FindCycle(g)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, cycle)
		})
	}
}

func TestFindCycle_SecondComponent(t *testing.T) {
	// tree 0-1, then square 2-3-4-5-2
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 5}, {5, 2}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	found, cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{2, 3, 4, 5, 2}, cycle)

	has, err := dfs.HasCycle(chain(t, 3))
	require.NoError(t, err)
	assert.False(t, has)
}
