package dtw

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	ErrEmptySequence    = errors.New("dtw: input sequences must be non-empty")
	ErrOptionViolation  = errors.New("dtw: invalid option supplied")
	ErrAlignNeedsMatrix = errors.New("dtw: Align cannot use rolling rows")
	ErrNoAlignment      = errors.New("dtw: window too narrow to align the sequences")
)

// Coord is one cell of a warping path: a[I] is aligned with b[J].
type Coord struct {
	I, J int
}

// Option configures Distance and Align.
type Option func(*options)

type options struct {
	window  int // 0 = unconstrained
	penalty float64
	rolling bool
	err     error
}

// WithWindow limits alignment to |i-j| ≤ w. w == 0 removes the limit.
func WithWindow(w int) Option {
	return func(o *options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: window cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.window = w
	}
}

// WithSlopePenalty adds p to every insertion or deletion step.
func WithSlopePenalty(p float64) Option {
	return func(o *options) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			o.err = fmt.Errorf("%w: slope penalty must be finite and ≥ 0 (%g)", ErrOptionViolation, p)
			return
		}
		o.penalty = p
	}
}

// WithRollingRows keeps only two DP rows. Distance only.
func WithRollingRows() Option {
	return func(o *options) { o.rolling = true }
}

func buildOptions(a, b []float64, opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if len(a) == 0 || len(b) == 0 {
		return o, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrEmptySequence, len(a), len(b))
	}

	return o, nil
}
