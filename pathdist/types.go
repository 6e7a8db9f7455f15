package pathdist

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphsim/matching"
)

// Sentinel errors for path estimation.
var (
	// ErrGraphNil is returned if either graph is nil.
	ErrGraphNil = errors.New("pathdist: graph is nil")

	// ErrTooFewPairs is returned when the matching has fewer than two distinct pairs.
	ErrTooFewPairs = errors.New("pathdist: need at least two distinct matched pairs")

	// ErrBadLabel is returned when a pair cannot be decoded into (A, B) nodes.
	ErrBadLabel = errors.New("pathdist: pair does not decode to one A and one B node")

	// ErrEndpointNotFound is returned when a decoded endpoint is outside its graph.
	ErrEndpointNotFound = errors.New("pathdist: endpoint not in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathdist: invalid option supplied")
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Exhausted tells which graph, if any, ran out of source→sink paths.
type Exhausted int

const (
	// None means the iteration bound was reached with paths left in both graphs.
	None Exhausted = iota
	// GraphA ran out while B still had a path.
	GraphA
	// GraphB ran out while A still had a path.
	GraphB
	// Both ran out in the same round.
	Both
)

// String implements fmt.Stringer.
func (e Exhausted) String() string {
	switch e {
	case None:
		return "none"
	case GraphA:
		return "graph A"
	case GraphB:
		return "graph B"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Exhausted(%d)", int(e))
	}
}

// Endpoints are the decoded node indices of the chosen pairs.
type Endpoints struct {
	SourceA, SourceB int
	SinkA, SinkB     int
}

// Result is the outcome of Estimate.
type Result struct {
	// Distance compares WeightsA and WeightsB under Metric.
	Distance float64

	// WeightsA / WeightsB hold the capacity sum of each drained path, in order.
	WeightsA []int64
	WeightsB []int64

	// Iterations counts the rounds that drained a path in both graphs.
	Iterations int

	// Metric is the sequence distance used for Distance.
	Metric Metric

	// Bound is the maximum number of rounds that was allowed.
	Bound int

	Exhausted Exhausted

	// Source and Sink are the matched pairs used as endpoints.
	Source, Sink matching.Pair
	Endpoints    Endpoints
}

// Metric selects how the two path-sum sequences are compared.
type Metric int

const (
	// Euclidean pads the shorter sequence with zeros (profile.Distance).
	Euclidean Metric = iota
	// Warped aligns the sequences with dynamic time warping. An empty
	// sequence falls back to Euclidean.
	Warped
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Warped:
		return "dtw"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a name produced by Metric.String back to its value.
func ParseMetric(name string) (Metric, error) {
	for _, m := range []Metric{Euclidean, Warped} {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown metric %q", ErrOptionViolation, name)
}

// Option configures Estimate.
type Option func(*options)

type options struct {
	consume  bool
	rng      *rand.Rand
	source   *matching.Pair
	sink     *matching.Pair
	maxIters int
	weighted bool
	drainAll bool
	metric   Metric
	window   int
	penalty  float64
	wall     int64
	err      error
}

// WithConsumeInputs drains the caller's graphs instead of private clones.
func WithConsumeInputs() Option {
	return func(o *options) { o.consume = true }
}

// WithRand sets the random source for endpoint sampling.
// A *rand.Rand is not goroutine-safe; do not share it across concurrent calls.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed seeds a private random source. seed==0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEndpoints fixes the source and sink pairs instead of sampling them.
// The pairs must be disjoint: no A node or B node may appear in both.
func WithEndpoints(source, sink matching.Pair) Option {
	return func(o *options) {
		if source.Equal(sink) {
			o.err = fmt.Errorf("%w: source and sink pairs are equal (%v)", ErrOptionViolation, source)
			return
		}
		sa, sb, errS := source.Decode()
		ta, tb, errT := sink.Decode()
		if errS == nil && errT == nil && (sa == ta || sb == tb) {
			o.err = fmt.Errorf("%w: source %v and sink %v share a node", ErrOptionViolation, source, sink)
			return
		}
		o.source, o.sink = &source, &sink
	}
}

// WithMaxIterations overrides the |matching|² round bound. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIters = n
	}
}

// WithWeightedPaths drains the least-capacity path each round
// (dijkstra.ShortestPath) instead of the fewest-hop one.
func WithWeightedPaths() Option {
	return func(o *options) { o.weighted = true }
}

// WithDrainRemainder keeps draining the graph that still has paths after
// the other is exhausted, until it runs out too or the bound is reached.
// Its extra sums make WeightsA and WeightsB differ in length.
func WithDrainRemainder() Option {
	return func(o *options) { o.drainAll = true }
}

// WithMetric selects the sequence distance. Default Euclidean.
func WithMetric(m Metric) Option {
	return func(o *options) {
		if m != Euclidean && m != Warped {
			o.err = fmt.Errorf("%w: unknown metric %d", ErrOptionViolation, int(m))
			return
		}
		o.metric = m
	}
}

// WithWarpWindow limits the Warped metric to a Sakoe-Chiba band of width w.
// The band is widened to the length difference of the two sequences when
// narrower, so an alignment always exists. w == 0 removes the limit.
func WithWarpWindow(w int) Option {
	return func(o *options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: warp window cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.window = w
	}
}

// WithWarpPenalty charges p for every non-diagonal step of the Warped metric.
func WithWarpPenalty(p float64) Option {
	return func(o *options) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			o.err = fmt.Errorf("%w: warp penalty must be finite and >= 0 (%g)", ErrOptionViolation, p)
			return
		}
		o.penalty = p
	}
}

// WithImpassableCapacity makes edges whose capacity is >= c invisible to
// the path search in both graphs; they are never drained. c must be positive.
func WithImpassableCapacity(c int64) Option {
	return func(o *options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: impassable capacity must be > 0 (%d)", ErrOptionViolation, c)
			return
		}
		o.wall = c
	}
}
