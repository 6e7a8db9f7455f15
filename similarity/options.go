package similarity

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/graphsim/flow"
	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/internal/telemetry"
	"github.com/katalvlaran/graphsim/pathdist"
)

// Option configures Compare and RunTrials.
type Option func(*options)

type options struct {
	log         logrus.FieldLogger
	tracer      trace.Tracer
	metrics     *telemetry.Metrics
	seed        int64
	pathOpts    []pathdist.Option
	hitsOpts    []hits.Option
	weighted    bool
	flowAlg     flow.Algorithm
	parallelism int
	err         error
}

func defaultOptions() options {
	return options{
		log:         telemetry.Discard(),
		tracer:      noop.NewTracerProvider().Tracer(telemetry.TracerName),
		weighted:    true,
		parallelism: 1,
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithLogger sets the logger; nil keeps the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithTracer sets the tracer used for stage spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithMetrics records stage timings and results into m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSeed seeds endpoint sampling in the path stage. RunTrials offsets it
// by the trial index so trials differ yet stay reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithPathOptions forwards extra options to pathdist.Estimate.
// pathdist.WithConsumeInputs drains the caller's graphs, which also leaves the
// flow stage nothing to measure.
func WithPathOptions(opts ...pathdist.Option) Option {
	return func(o *options) { o.pathOpts = append(o.pathOpts, opts...) }
}

// WithHitsOptions forwards options to hits.Compare.
func WithHitsOptions(opts ...hits.Option) Option {
	return func(o *options) { o.hitsOpts = append(o.hitsOpts, opts...) }
}

// WithWeightedSpectrum selects capacity-weighted (default) or 0/1 adjacency
// matrices for the spectrum stage.
func WithWeightedSpectrum(on bool) Option {
	return func(o *options) { o.weighted = on }
}

// WithParallelism bounds the number of concurrent trials in RunTrials.
func WithParallelism(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: parallelism must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.parallelism = k
	}
}

// WithFlowAlgorithm selects the max-flow algorithm of the flow stage.
// Default flow.Dinic.
func WithFlowAlgorithm(a flow.Algorithm) Option {
	return func(o *options) {
		if a < flow.Dinic || a > flow.FordFulkerson {
			o.err = fmt.Errorf("%w: unknown flow algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.flowAlg = a
	}
}
