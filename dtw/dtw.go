package dtw

import (
	"fmt"
	"math"
)

// step records which neighbor a DP cell was reached from.
type step uint8

const (
	stepDiag step = iota
	stepUp        // i-1, j
	stepLeft      // i, j-1
)

// Distance returns the DTW distance between a and b.
func Distance(a, b []float64, opts ...Option) (float64, error) {
	o, err := buildOptions(a, b, opts)
	if err != nil {
		return 0, err
	}
	var d float64
	if o.rolling {
		d = rolling(a, b, o)
	} else {
		d, _ = full(a, b, o)
	}
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%w: |%d-%d| > %d", ErrNoAlignment, len(a), len(b), o.window)
	}

	return d, nil
}

// Align returns the DTW distance together with the optimal warping path
// from (0,0) to (len(a)-1, len(b)-1). Ties prefer the diagonal, then up.
func Align(a, b []float64, opts ...Option) (float64, []Coord, error) {
	o, err := buildOptions(a, b, opts)
	if err != nil {
		return 0, nil, err
	}
	if o.rolling {
		return 0, nil, ErrAlignNeedsMatrix
	}
	d, from := full(a, b, o)
	if math.IsInf(d, 1) {
		return 0, nil, fmt.Errorf("%w: |%d-%d| > %d", ErrNoAlignment, len(a), len(b), o.window)
	}

	path := make([]Coord, 0, len(a)+len(b))
	for i, j := len(a), len(b); i > 0 && j > 0; {
		path = append(path, Coord{I: i - 1, J: j - 1})
		switch from[i][j] {
		case stepDiag:
			i, j = i-1, j-1
		case stepUp:
			i--
		case stepLeft:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return d, path, nil
}

func (o options) outside(i, j int) bool {
	if o.window == 0 {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > o.window
}

// full fills the (n+1)×(m+1) table and returns D[n][m] and the step table.
func full(a, b []float64, o options) (float64, [][]step) {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	from := make([][]step, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		from[i] = make([]step, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if o.outside(i, j) {
				continue
			}
			best, s := dp[i-1][j-1], stepDiag
			if up := dp[i-1][j] + o.penalty; up < best {
				best, s = up, stepUp
			}
			if left := dp[i][j-1] + o.penalty; left < best {
				best, s = left, stepLeft
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
			from[i][j] = s
		}
	}

	return dp[n][m], from
}

// rolling computes D[n][m] with two rows of length m+1.
func rolling(a, b []float64, o options) float64 {
	m := len(b)
	inf := math.Inf(1)
	prev, curr := make([]float64, m+1), make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.outside(i, j) {
				curr[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.penalty, curr[j-1]+o.penalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
