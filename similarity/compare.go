package similarity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/dfs"
	"github.com/katalvlaran/graphsim/flow"
	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/matching"
	"github.com/katalvlaran/graphsim/matrix"
	"github.com/katalvlaran/graphsim/pathdist"
	"github.com/katalvlaran/graphsim/profile"
)

// Stage names used for spans, metric labels and log fields.
const (
	StageStructure = "structure"
	StageProfiles  = "profiles"
	StageClosest   = "closest"
	StageMatching  = "matching"
	StagePath      = "path"
	StageFlow      = "flow"
	StageSpectrum  = "spectrum"
)

// comparer carries one run's state through the stages.
type comparer struct {
	o      options
	g1, g2 *core.Graph
	log    logrus.FieldLogger
	r      *Report
}

// Compare runs all stages on g1 (graph A) and g2 (graph B).
// Neither graph is modified.
func Compare(ctx context.Context, g1, g2 *core.Graph, opts ...Option) (*Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return compare(ctx, g1, g2, o, 0)
}

func compare(ctx context.Context, g1, g2 *core.Graph, o options, trial int) (*Report, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	if g1.VertexCount() == 0 || g2.VertexCount() == 0 {
		return nil, fmt.Errorf("Compare: %d and %d vertices: %w", g1.VertexCount(), g2.VertexCount(), ErrEmptyGraph)
	}

	r := &Report{RunID: uuid.NewString(), Trial: trial, GraphA: g1.Stats(), GraphB: g2.Stats()}
	ctx, span := o.tracer.Start(ctx, "similarity.Compare", trace.WithAttributes(
		attribute.String("run_id", r.RunID),
		attribute.Int("trial", trial),
		attribute.Int("graph_a.vertices", r.GraphA.VertexCount),
		attribute.Int("graph_b.vertices", r.GraphB.VertexCount),
	))
	defer span.End()

	c := &comparer{
		o:  o,
		g1: g1,
		g2: g2,
		r:  r,
		log: o.log.WithFields(logrus.Fields{
			"run_id": r.RunID,
			"trial":  trial,
		}),
	}
	err := c.run(ctx)
	if o.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		o.metrics.Comparisons.WithLabelValues(outcome).Inc()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.WithError(err).Error("comparison failed")
		return nil, err
	}

	fields := logrus.Fields{
		"optimal_weight": r.OptimalWeight,
		"mutual":         len(r.Mutual),
	}
	if r.Spectrum != nil {
		fields["similar"] = r.Spectrum.Similar
	}
	c.log.WithFields(fields).Info("comparison finished")

	return r, nil
}

func (c *comparer) run(ctx context.Context) error {
	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StageStructure, c.structure},
		{StageProfiles, c.buildProfiles},
		{StageClosest, c.greedy},
		{StageMatching, c.optimal},
		{StagePath, c.pathDistance},
		{StageFlow, c.maxFlow},
		{StageSpectrum, c.spectrum},
	}
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Compare: before %s: %w", s.name, err)
		}
		if err := c.stage(ctx, s.name, s.fn); err != nil {
			return fmt.Errorf("Compare: %s: %w", s.name, err)
		}
	}

	return nil
}

// stage wraps fn in a span, a duration observation and a debug log line.
func (c *comparer) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := c.o.tracer.Start(ctx, "similarity."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	if c.o.metrics != nil {
		c.o.metrics.StageSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.log.WithFields(logrus.Fields{"stage": name, "elapsed": elapsed}).Debug("stage done")

	return err
}

func (c *comparer) structure(context.Context) error {
	var err error
	if c.r.StructureA, err = summarize(c.g1); err != nil {
		return fmt.Errorf("graph A: %w", err)
	}
	if c.r.StructureB, err = summarize(c.g2); err != nil {
		return fmt.Errorf("graph B: %w", err)
	}

	return nil
}

func summarize(g *core.Graph) (*Structure, error) {
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	rank, err := dfs.CircuitRank(g)
	if err != nil {
		return nil, err
	}
	_, cycle, err := dfs.FindCycle(g)
	if err != nil {
		return nil, err
	}
	s := &Structure{
		Components:  len(comps),
		CircuitRank: rank,
		Acyclic:     cycle == nil,
		Cycle:       cycle,
	}
	for _, comp := range comps {
		s.Largest = max(s.Largest, len(comp))
	}

	return s, nil
}

func (c *comparer) buildProfiles(context.Context) error {
	var err error
	if c.r.ProfilesA, err = profile.Build(c.g1); err != nil {
		return err
	}
	c.r.ProfilesB, err = profile.Build(c.g2)

	return err
}

func (c *comparer) greedy(context.Context) error {
	var err error
	if c.r.GreedyAB, err = profile.Closest(c.r.ProfilesA, c.r.ProfilesB); err != nil {
		return err
	}
	if c.r.GreedyBA, err = profile.Closest(c.r.ProfilesB, c.r.ProfilesA); err != nil {
		return err
	}
	c.r.Mutual = profile.Mutual(c.r.GreedyAB, c.r.GreedyBA)

	return nil
}

func (c *comparer) optimal(context.Context) error {
	sg := matching.NewSimilarityGraph(c.r.ProfilesA, c.r.ProfilesB)
	m, err := matching.MaxWeight(sg)
	if err != nil {
		return err
	}
	if c.r.OptimalWeight, err = matching.Weight(sg, m); err != nil {
		return err
	}
	if c.r.OptimalCorrespondences, err = m.Correspondences(); err != nil {
		return err
	}
	c.r.Optimal = m
	if c.o.metrics != nil {
		c.o.metrics.MatchingWeight.Set(c.r.OptimalWeight)
	}

	return nil
}

func (c *comparer) pathDistance(context.Context) error {
	opts := append([]pathdist.Option{pathdist.WithSeed(c.o.seed)}, c.o.pathOpts...)
	res, err := pathdist.Estimate(c.g1, c.g2, c.r.Optimal, opts...)
	if errors.Is(err, pathdist.ErrTooFewPairs) {
		c.r.PathSkipped = true
		c.log.WithField("pairs", len(c.r.Optimal)).Info("path estimate skipped: matching too small")
		return nil
	}
	if err != nil {
		return err
	}
	c.r.Path = res

	if res.Exhausted != pathdist.None {
		c.log.WithFields(logrus.Fields{
			"exhausted":  res.Exhausted.String(),
			"iterations": res.Iterations,
		}).Info("path estimate stopped early")
	}
	if c.o.metrics != nil {
		c.o.metrics.PathDistance.Set(res.Distance)
		c.o.metrics.PathIterations.Observe(float64(res.Iterations))
	}

	return nil
}

// maxFlow measures the capacity between the path endpoints in each graph.
func (c *comparer) maxFlow(ctx context.Context) error {
	if c.r.Path == nil {
		return nil
	}
	ends := c.r.Path.Endpoints
	opts := flow.FlowOptions{Ctx: ctx, Algorithm: c.o.flowAlg, Logger: c.log}
	a, err := flow.MaxFlow(c.g1, ends.SourceA, ends.SinkA, opts)
	if err != nil {
		return fmt.Errorf("graph A: %w", err)
	}
	b, err := flow.MaxFlow(c.g2, ends.SourceB, ends.SinkB, opts)
	if err != nil {
		return fmt.Errorf("graph B: %w", err)
	}
	c.r.Flow = &FlowComparison{
		Algorithm: c.o.flowAlg.String(),
		A:         a.Value,
		B:         b.Value,
		CutA:      len(a.CutEdges),
		CutB:      len(b.CutEdges),
		Equal:     a.Value == b.Value,
	}
	if c.o.metrics != nil {
		c.o.metrics.MaxFlow.WithLabelValues("a").Set(float64(a.Value))
		c.o.metrics.MaxFlow.WithLabelValues("b").Set(float64(b.Value))
	}

	return nil
}

func (c *comparer) spectrum(context.Context) error {
	a, err := matrix.NewAdjacency(c.g1, c.o.weighted)
	if err != nil {
		return err
	}
	b, err := matrix.NewAdjacency(c.g2, c.o.weighted)
	if err != nil {
		return err
	}
	c.r.Spectrum, err = hits.Compare(a, b, c.o.hitsOpts...)
	if errors.Is(err, hits.ErrZeroVector) {
		// an edgeless graph has no hub or authority mass
		c.r.SpectrumSkipped = true
		c.log.Info("spectrum skipped: edgeless graph")
		return nil
	}
	if err != nil {
		return err
	}
	if c.o.metrics != nil {
		v := 0.0
		if c.r.Spectrum.Similar {
			v = 1
		}
		c.o.metrics.SpectraSimilar.Set(v)
	}

	return nil
}
