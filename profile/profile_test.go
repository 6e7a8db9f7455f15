package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/profile"
)

// star returns center 0 joined to 1..len(w) with the given weights.
func star(t *testing.T, w ...int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(len(w) + 1)
	for i, x := range w {
		_, err := g.AddEdge(0, i+1, x)
		require.NoError(t, err)
	}

	return g
}

func TestBuild(t *testing.T) {
	g := star(t, 2, 5, 0)
	p, err := profile.Build(g)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, profile.Vector{5, 2, 1}, p[0])
	assert.Equal(t, profile.Vector{2}, p[1])
	assert.Equal(t, profile.Vector{1}, p[3])

	iso, err := profile.Build(core.NewGraph(2))
	require.NoError(t, err)
	assert.Equal(t, profile.Profiles{{}, {}}, iso)

	_, err = profile.Build(nil)
	require.ErrorIs(t, err, profile.ErrGraphNil)
}

func TestDistance(t *testing.T) {
	u := profile.Vector{3, 1}
	v := profile.Vector{3, 1, 0}
	assert.Equal(t, 0.0, profile.Distance(u, v))
	assert.Len(t, u, 2, "padding must not leak into the caller's vector")

	a := profile.Vector{5, 4, 1}
	b := profile.Vector{2}
	assert.InDelta(t, math.Sqrt(9+16+1), profile.Distance(a, b), 1e-12)
	assert.Equal(t, profile.Distance(a, b), profile.Distance(b, a))
	assert.Equal(t, profile.Vector{2}, b)

	assert.Equal(t, 0.0, profile.Distance(nil, profile.Vector{}))
}

// TestDistance_NoAliasing reuses one short vector against longer ones; a
// padding bug would make the second comparison see a lengthened vector.
func TestDistance_NoAliasing(t *testing.T) {
	short := make(profile.Vector, 1, 8)
	short[0] = 1
	_ = profile.Distance(short, profile.Vector{1, 1, 1, 1})
	assert.Len(t, short, 1)
	assert.Equal(t, 1.0, profile.Distance(short, profile.Vector{1, 1}))
}

func TestDistanceMatrix(t *testing.T) {
	d := profile.DistanceMatrix(profile.Profiles{{1}, {2, 2}}, profile.Profiles{{1}})
	require.Len(t, d, 2)
	assert.Equal(t, []float64{0}, d[0])
	assert.InDelta(t, math.Sqrt(1+4), d[1][0], 1e-12)
}

func TestClosest_SelfIsIdentity(t *testing.T) {
	g := star(t, 4, 3, 3, 1)
	_, _ = g.AddEdge(1, 2, 2)
	p, err := profile.Build(g)
	require.NoError(t, err)

	got, err := profile.Closest(p, p)
	require.NoError(t, err)
	for i, c := range got {
		assert.Equal(t, profile.Correspondence{Node: i, Match: i}, c)
	}
}

// TestClosest_DuplicatesPickFirst shows that identical profiles resolve to
// the lowest index, so a self-match is not guaranteed once duplicates exist.
func TestClosest_DuplicatesPickFirst(t *testing.T) {
	nl := profile.Profiles{{1}, {1}}
	got, err := profile.Closest(nl, nl)
	require.NoError(t, err)
	assert.Equal(t, []profile.Correspondence{{0, 0}, {1, 0}}, got)
}

func TestClosest_Errors(t *testing.T) {
	_, err := profile.Closest(profile.Profiles{{1}}, nil)
	require.ErrorIs(t, err, profile.ErrEmptyProfiles)

	got, err := profile.Closest(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMutual(t *testing.T) {
	nl1 := profile.Profiles{{5}, {1}, {3}}
	nl2 := profile.Profiles{{1}, {4}}

	ab, err := profile.Closest(nl1, nl2)
	require.NoError(t, err)
	// 0→1 (|5-4|), 1→0, 2→1 (|3-4| beats |3-1|)
	assert.Equal(t, []profile.Correspondence{{0, 1}, {1, 0}, {2, 1}}, ab)

	ba, err := profile.Closest(nl2, nl1)
	require.NoError(t, err)
	// 0→1, 1→0 (|4-5| ties |4-3|, first wins)
	assert.Equal(t, []profile.Correspondence{{0, 1}, {1, 0}}, ba)

	assert.Equal(t, []profile.Correspondence{{0, 1}, {1, 0}}, profile.Mutual(ab, ba))
	assert.Empty(t, profile.Mutual(ab, nil))
}
