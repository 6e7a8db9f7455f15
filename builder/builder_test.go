package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
)

// edgeList flattens g into (from, to, weight) triples in insertion order.
func edgeList(g *core.Graph) [][3]int64 {
	out := make([][3]int64, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [3]int64{int64(e.From), int64(e.To), e.Weight})
	}

	return out
}

func TestRandomCapacity_CountsAndRange(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithName(builder.GNMName(20, 40))},
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithMaxCapacity(5)},
		builder.RandomCapacity(20, 40),
	)
	require.NoError(t, err)
	assert.Equal(t, "gnm_random_graph(20,40)", g.Name())
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, 40, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(5))
	}
}

func TestRandomCapacity_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomCapacity(12, 20))
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, edgeList(build(5)), edgeList(build(5)))
	assert.NotEqual(t, edgeList(build(5)), edgeList(build(6)))
}

func TestRandomCapacity_Edges(t *testing.T) {
	// saturating m yields the complete graph
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomCapacity(5, 100))
	require.NoError(t, err)
	assert.Equal(t, builder.MaxEdges(5), g.EdgeCount())

	// a single vertex needs no RNG
	g, err = builder.BuildGraph(nil, nil, builder.RandomCapacity(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.RandomCapacity(4, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomCapacity(0, 0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.RandomCapacity(3, -1))
	require.ErrorIs(t, err, builder.ErrBadEdgeCount)
}

func TestMaxEdges(t *testing.T) {
	assert.Equal(t, 0, builder.MaxEdges(1))
	assert.Equal(t, 1, builder.MaxEdges(2))
	assert.Equal(t, 190, builder.MaxEdges(20))
}

func TestFixtures(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}}, edgeList(g))

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))}, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, [][3]int64{{0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, edgeList(g))

	// constructors compose on disjoint vertex ranges
	g, err = builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Complete(2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithMaxCapacity(0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestUniformCapacityFn(t *testing.T) {
	fn := builder.UniformCapacityFn(3)
	assert.Equal(t, int64(1), fn(nil))
	rng := rand.New(rand.NewSource(9))
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		seen[fn(rng)] = true
	}
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, seen)
}

func TestRelabel(t *testing.T) {
	g := core.NewGraph(3, core.WithName("p3"))
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 0)

	r, err := builder.Relabel(g, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "p3", r.Name())
	assert.Equal(t, [][3]int64{{2, 0, 4}, {0, 1, 0}}, edgeList(r))

	_, err = builder.Relabel(g, []int{0, 0, 1})
	require.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(g, []int{0, 1})
	require.ErrorIs(t, err, builder.ErrBadPermutation)

	s, perm, err := builder.Shuffled(g, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.Len(t, perm, 3)
	assert.Equal(t, g.EdgeCount(), s.EdgeCount())
	assert.True(t, s.HasEdge(perm[0], perm[1]))

	_, _, err = builder.Shuffled(g, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
