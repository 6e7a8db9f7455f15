package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/matrix"
)

// TestTranspose checks shape and element placement on a 2×3 input.
func TestTranspose(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.(*matrix.Dense).RowsCopy())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec verifies y = M·x and length validation.
func TestMatVec(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}, {0, -1}})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, -1}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose covers the relative/absolute bound and length mismatch.
func TestAllClose(t *testing.T) {
	ok, err := matrix.AllClose([]float64{1, 2}, []float64{1 + 1e-9, 2}, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose([]float64{1, 2}, []float64{1.01, 2}, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose([]float64{}, []float64{}, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose([]float64{1}, []float64{1, 2}, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateSquare rejects rectangular and nil inputs.
func TestValidateSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNonSquare)

	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateSquare(nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}
