package similarity_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/flow"
	"github.com/katalvlaran/graphsim/internal/telemetry"
	"github.com/katalvlaran/graphsim/profile"
	"github.com/katalvlaran/graphsim/similarity"
)

// kite is a weighted triangle with a tail; every vertex has a distinct profile.
func kite(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	for _, e := range [][3]int64{{0, 1, 3}, {1, 2, 5}, {2, 0, 7}, {2, 3, 1}} {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

func identity(n int) []profile.Correspondence {
	out := make([]profile.Correspondence, n)
	for i := range out {
		out[i] = profile.Correspondence{Node: i, Match: i}
	}

	return out
}

func TestCompare_IdenticalGraphs(t *testing.T) {
	g1, g2 := kite(t), kite(t)
	r, err := similarity.Compare(context.Background(), g1, g2)
	require.NoError(t, err)

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, identity(4), r.GreedyAB)
	assert.Equal(t, identity(4), r.GreedyBA)
	assert.Equal(t, identity(4), r.Mutual)
	assert.Equal(t, identity(4), r.OptimalCorrespondences)
	assert.Len(t, r.Optimal, 4)
	assert.InDelta(t, 4/0.001, r.OptimalWeight, 1e-6)

	require.NotNil(t, r.Path)
	assert.False(t, r.PathSkipped)
	assert.Zero(t, r.Path.Distance)
	assert.Equal(t, r.Path.WeightsA, r.Path.WeightsB)

	require.NotNil(t, r.Spectrum)
	assert.True(t, r.Spectrum.Similar)

	want := &similarity.Structure{Components: 1, Largest: 4, CircuitRank: 1, Cycle: []int{0, 1, 2, 0}}
	assert.Equal(t, want, r.StructureA)
	assert.Equal(t, want, r.StructureB)

	require.NotNil(t, r.Flow)
	assert.Equal(t, "dinic", r.Flow.Algorithm)
	assert.True(t, r.Flow.Equal)
	assert.Positive(t, r.Flow.A)

	// inputs untouched
	assert.Equal(t, 4, g1.EdgeCount())
	assert.Equal(t, 4, g2.EdgeCount())
}

func TestCompare_RelabelledCopy(t *testing.T) {
	g := kite(t)
	h, perm, err := builder.Shuffled(g, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	r, err := similarity.Compare(context.Background(), g, h)
	require.NoError(t, err)
	for i, c := range r.GreedyAB {
		assert.Equal(t, perm[i], c.Match, "node %d", i)
	}
	for i, c := range r.OptimalCorrespondences {
		assert.Equal(t, profile.Correspondence{Node: i, Match: perm[i]}, c)
	}
	assert.Len(t, r.Mutual, 4)
	assert.True(t, r.Spectrum.Similar)
}

func TestCompare_DifferentGraphs(t *testing.T) {
	g1 := kite(t)
	g2 := core.NewGraph(4)
	for i := 0; i < 3; i++ {
		_, err := g2.AddEdge(i, i+1, 2)
		require.NoError(t, err)
	}

	r, err := similarity.Compare(context.Background(), g1, g2, similarity.WithSeed(3))
	require.NoError(t, err)
	assert.False(t, r.Spectrum.Similar)
	assert.False(t, r.StructureA.Acyclic)
	assert.True(t, r.StructureB.Acyclic)
	assert.Zero(t, r.StructureB.CircuitRank)
	assert.Len(t, r.GreedyAB, 4)
	assert.Len(t, r.GreedyBA, 4)
	assert.Len(t, r.Optimal, 4)
}

func TestCompare_DegenerateStagesSkipped(t *testing.T) {
	r, err := similarity.Compare(context.Background(), core.NewGraph(1), core.NewGraph(1))
	require.NoError(t, err)
	assert.True(t, r.PathSkipped)
	assert.Nil(t, r.Path)
	assert.True(t, r.SpectrumSkipped)
	assert.Nil(t, r.Spectrum)
	assert.Nil(t, r.Flow)
	assert.Equal(t, &similarity.Structure{Components: 1, Largest: 1, Acyclic: true}, r.StructureA)
	assert.Equal(t, identity(1), r.OptimalCorrespondences)
}

func TestCompare_FlowAlgorithm(t *testing.T) {
	for _, alg := range []flow.Algorithm{flow.Dinic, flow.EdmondsKarp, flow.FordFulkerson} {
		r, err := similarity.Compare(context.Background(), kite(t), kite(t),
			similarity.WithFlowAlgorithm(alg), similarity.WithSeed(5))
		require.NoError(t, err)
		require.NotNil(t, r.Flow)
		assert.Equal(t, alg.String(), r.Flow.Algorithm)
		assert.Equal(t, r.Flow.A, r.Flow.B)
		assert.Equal(t, r.Flow.CutA, r.Flow.CutB)
	}
}

func TestCompare_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := similarity.Compare(ctx, nil, kite(t))
	require.ErrorIs(t, err, similarity.ErrGraphNil)

	_, err = similarity.Compare(ctx, kite(t), core.NewGraph(0))
	require.ErrorIs(t, err, similarity.ErrEmptyGraph)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = similarity.Compare(cancelled, kite(t), kite(t))
	require.ErrorIs(t, err, context.Canceled)

	_, err = similarity.Compare(ctx, kite(t), kite(t), similarity.WithParallelism(0))
	require.ErrorIs(t, err, similarity.ErrOptionViolation)

	_, err = similarity.Compare(ctx, kite(t), kite(t), similarity.WithFlowAlgorithm(flow.Algorithm(9)))
	require.ErrorIs(t, err, similarity.ErrOptionViolation)
}

func TestCompare_Instrumentation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := telemetry.NewMetrics(reg)
	require.NoError(t, err)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	_, err = similarity.Compare(context.Background(), kite(t), kite(t),
		similarity.WithMetrics(m),
		similarity.WithTracer(tp.Tracer("test")),
		similarity.WithLogger(log),
	)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, s := range rec.Ended() {
		names[s.Name()] = true
	}
	for _, want := range []string{
		"similarity.Compare",
		"similarity." + similarity.StageStructure,
		"similarity." + similarity.StageProfiles,
		"similarity." + similarity.StageClosest,
		"similarity." + similarity.StageMatching,
		"similarity." + similarity.StagePath,
		"similarity." + similarity.StageFlow,
		"similarity." + similarity.StageSpectrum,
	} {
		assert.True(t, names[want], "missing span %s", want)
	}

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "comparison finished", hook.LastEntry().Message)
	assert.Equal(t, true, hook.LastEntry().Data["similar"])

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, f := range families {
		for _, mm := range f.GetMetric() {
			if c := mm.GetCounter(); c != nil {
				got[f.GetName()] += c.GetValue()
			}
			if g := mm.GetGauge(); g != nil {
				got[f.GetName()] = g.GetValue()
			}
		}
	}
	assert.Equal(t, 1.0, got["graphsim_comparisons_total"])
	assert.Equal(t, 1.0, got["graphsim_spectra_similar"])
	assert.Zero(t, got["graphsim_path_distance"])
	assert.Positive(t, got["graphsim_max_flow"])
}

func randomPair(trial int) (*core.Graph, *core.Graph, error) {
	rng := rand.New(rand.NewSource(int64(trial) + 1))
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithMaxCapacity(5)},
		builder.RandomCapacity(8, 12))
	if err != nil {
		return nil, nil, err
	}
	h, _, err := builder.Shuffled(g, rng)

	return g, h, err
}

func TestRunTrials(t *testing.T) {
	reports, err := similarity.RunTrials(context.Background(), 5, randomPair,
		similarity.WithParallelism(2), similarity.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, reports, 5)

	ids := map[string]bool{}
	for i, r := range reports {
		require.NotNil(t, r)
		assert.Equal(t, i, r.Trial)
		ids[r.RunID] = true
		require.NotNil(t, r.Spectrum)
		assert.True(t, r.Spectrum.Similar, "trial %d", i)
		assert.Equal(t, 12, r.GraphA.EdgeCount)
	}
	assert.Len(t, ids, 5)
}

func TestRunTrials_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := similarity.RunTrials(ctx, 3, nil)
	require.ErrorIs(t, err, similarity.ErrNilGenerator)

	_, err = similarity.RunTrials(ctx, 0, randomPair)
	require.ErrorIs(t, err, similarity.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = similarity.RunTrials(ctx, 4, func(trial int) (*core.Graph, *core.Graph, error) {
		if trial == 2 {
			return nil, nil, boom
		}
		return randomPair(trial)
	})
	require.ErrorIs(t, err, boom)
}
