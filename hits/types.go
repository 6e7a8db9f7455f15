package hits

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphsim/matrix"
)

// DefaultSteps is the number of power-iteration steps.
const DefaultSteps = 40

// Sentinel errors.
var (
	ErrNonSquare       = errors.New("hits: adjacency matrix is not square")
	ErrZeroVector      = errors.New("hits: cannot normalize a zero vector")
	ErrOptionViolation = errors.New("hits: invalid option supplied")
)

// Scores holds the final authority and hub vectors, indexed by node.
type Scores struct {
	Authority []float64
	Hub       []float64

	// Steps is the number of iterations actually run.
	Steps int
}

// Comparison is the result of Compare. All four vectors are sorted ascending.
type Comparison struct {
	AuthorityA, HubA []float64
	AuthorityB, HubB []float64

	AuthorityEqual bool
	HubEqual       bool

	// Similar is AuthorityEqual && HubEqual.
	Similar bool
}

// Option configures Score and Compare.
type Option func(*options)

type options struct {
	steps     int
	normalize bool
	tol       float64
	rtol      float64
	atol      float64
	err       error
}

func defaultOptions() options {
	return options{
		steps:     DefaultSteps,
		normalize: true,
		rtol:      matrix.DefaultRTol,
		atol:      matrix.DefaultATol,
	}
}

// WithSteps sets the number of iterations; k must be ≥ 0.
func WithSteps(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: steps cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.steps = k
	}
}

// WithNormalize toggles L2 normalization after each update.
func WithNormalize(on bool) Option {
	return func(o *options) { o.normalize = on }
}

// WithTolerance enables early stopping once both vectors change by less
// than tol in one step. 0 disables it.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 {
			o.err = fmt.Errorf("%w: tolerance cannot be negative (%g)", ErrOptionViolation, tol)
			return
		}
		o.tol = tol
	}
}

// WithRTol sets Compare's relative tolerance.
func WithRTol(rtol float64) Option {
	return func(o *options) {
		if rtol < 0 {
			o.err = fmt.Errorf("%w: rtol cannot be negative (%g)", ErrOptionViolation, rtol)
			return
		}
		o.rtol = rtol
	}
}

// WithATol sets Compare's absolute tolerance.
func WithATol(atol float64) Option {
	return func(o *options) {
		if atol < 0 {
			o.err = fmt.Errorf("%w: atol cannot be negative (%g)", ErrOptionViolation, atol)
			return
		}
		o.atol = atol
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
