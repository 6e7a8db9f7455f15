package hits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/matrix"
)

// permute returns P·A·Pᵀ for the permutation perm (node i becomes perm[i]).
func permute(t *testing.T, a [][]float64, perm []int) *matrix.Dense {
	t.Helper()
	n := len(a)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := range a {
		for j := range a[i] {
			out[perm[i]][perm[j]] = a[i][j]
		}
	}

	return dense(t, out)
}

var pathWithTail = [][]float64{
	{0, 4, 0, 0, 1},
	{4, 0, 2, 0, 0},
	{0, 2, 0, 3, 0},
	{0, 0, 3, 0, 0},
	{1, 0, 0, 0, 0},
}

func TestCompare_IsomorphicIsSimilar(t *testing.T) {
	c, err := hits.Compare(dense(t, pathWithTail), permute(t, pathWithTail, []int{3, 0, 4, 1, 2}))
	require.NoError(t, err)
	assert.True(t, c.AuthorityEqual)
	assert.True(t, c.HubEqual)
	assert.True(t, c.Similar)
	assert.IsNonDecreasing(t, c.AuthorityA)
	assert.IsNonDecreasing(t, c.HubB)
}

func TestCompare_DifferentStructure(t *testing.T) {
	other := [][]float64{
		{0, 1, 1, 1, 1},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	}
	c, err := hits.Compare(dense(t, pathWithTail), dense(t, other))
	require.NoError(t, err)
	assert.False(t, c.Similar)
}

func TestCompare_SizeMismatch(t *testing.T) {
	c, err := hits.Compare(dense(t, [][]float64{{0, 1}, {1, 0}}), dense(t, pathWithTail))
	require.NoError(t, err)
	assert.False(t, c.AuthorityEqual)
	assert.False(t, c.Similar)
	assert.Len(t, c.AuthorityA, 2)
	assert.Len(t, c.AuthorityB, 5)
}

func TestCompare_ToleranceOptions(t *testing.T) {
	a := dense(t, [][]float64{{0, 1}, {1, 0}})
	b := dense(t, [][]float64{{0, 1.0001}, {1.0001, 0}})
	// normalization removes the scale, leaving at most rounding noise
	c, err := hits.Compare(a, b, hits.WithRTol(0), hits.WithATol(1e-12))
	require.NoError(t, err)
	assert.True(t, c.Similar)

	_, err = hits.Compare(a, b, hits.WithRTol(-1))
	require.ErrorIs(t, err, hits.ErrOptionViolation)

	rect, _ := matrix.NewDense(1, 2)
	_, err = hits.Compare(a, rect)
	require.ErrorIs(t, err, hits.ErrNonSquare)
}
