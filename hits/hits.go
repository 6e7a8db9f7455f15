package hits

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphsim/matrix"
)

// Score returns the authority and hub vectors of a.
//
// Complexity: O(steps · n²).
func Score(a matrix.Matrix, opts ...Option) (*Scores, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return score(a, o)
}

func score(a matrix.Matrix, o options) (*Scores, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return nil, fmt.Errorf("Score: %w: %w", ErrNonSquare, err)
		}
		return nil, fmt.Errorf("Score: %w", err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("Score: %w", err)
	}

	n := a.Rows()
	auth, hub := ones(n), ones(n)
	steps := 0
	for steps < o.steps {
		nextAuth, err := matrix.MatVec(at, hub)
		if err != nil {
			return nil, fmt.Errorf("Score: step %d: %w", steps, err)
		}
		if o.normalize {
			if nextAuth, err = Normalize(nextAuth); err != nil {
				return nil, fmt.Errorf("Score: step %d authority: %w", steps, err)
			}
		}
		nextHub, err := matrix.MatVec(a, nextAuth)
		if err != nil {
			return nil, fmt.Errorf("Score: step %d: %w", steps, err)
		}
		if o.normalize {
			if nextHub, err = Normalize(nextHub); err != nil {
				return nil, fmt.Errorf("Score: step %d hub: %w", steps, err)
			}
		}
		steps++

		converged := o.tol > 0 && delta(auth, nextAuth) < o.tol && delta(hub, nextHub) < o.tol
		auth, hub = nextAuth, nextHub
		if converged {
			break
		}
	}

	return &Scores{Authority: auth, Hub: hub, Steps: steps}, nil
}

// Normalize returns v / ‖v‖₂ as a new slice.
func Normalize(v []float64) ([]float64, error) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 || math.IsNaN(norm) {
		return nil, ErrZeroVector
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}

	return out, nil
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// delta is ‖a-b‖₂.
func delta(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
