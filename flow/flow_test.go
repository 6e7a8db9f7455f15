package flow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/flow"
)

type runner func(*core.Graph, int, int, flow.FlowOptions) (*flow.Result, error)

// FlowSuite runs the same scenarios against every algorithm.
type FlowSuite struct {
	suite.Suite
	run runner
}

func TestDinic(t *testing.T) {
	suite.Run(t, &FlowSuite{run: flow.RunDinic})
}

func TestEdmondsKarp(t *testing.T) {
	suite.Run(t, &FlowSuite{run: flow.RunEdmondsKarp})
}

func TestFordFulkerson(t *testing.T) {
	suite.Run(t, &FlowSuite{run: flow.RunFordFulkerson})
}

// diamond is s=0, t=3 with 0-1:3, 0-2:2, 1-2:1, 1-3:2, 2-3:3 (max flow 5).
func diamond(t *testing.T) (*core.Graph, []uint64) {
	g := core.NewGraph(4)
	var ids []uint64
	for _, e := range [][3]int64{{0, 1, 3}, {0, 2, 2}, {1, 2, 1}, {1, 3, 2}, {2, 3, 3}} {
		id, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return g, ids
}

// TestSingleEdge verifies that a single edge yields its capacity.
func (s *FlowSuite) TestSingleEdge() {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 7)

	res, err := s.run(g, 0, 1, flow.DefaultOptions())
	s.Require().NoError(err)
	s.Equal(int64(7), res.Value)
	s.Equal(1, res.Augmentations)
	s.Equal([]int{0}, res.SourceSide)

	// undirected: the reverse direction carries the same
	res, err = s.run(g, 1, 0, flow.DefaultOptions())
	s.Require().NoError(err)
	s.Equal(int64(7), res.Value)
}

// TestDiamond checks the value and the minimum cut next to the source.
func (s *FlowSuite) TestDiamond() {
	g, ids := diamond(s.T())
	res, err := s.run(g, 0, 3, flow.DefaultOptions())
	s.Require().NoError(err)
	s.Equal(int64(5), res.Value)
	s.Equal([]int{0}, res.SourceSide)
	s.Equal([]uint64{ids[0], ids[1]}, res.CutEdges)
}

// TestZeroWeightIsUnitCapacity follows core.Edge.Capacity.
func (s *FlowSuite) TestZeroWeightIsUnitCapacity() {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 4)

	res, err := s.run(g, 0, 2, flow.DefaultOptions())
	s.Require().NoError(err)
	s.Equal(int64(1), res.Value)
	s.Equal([]int{0}, res.SourceSide)
}

// TestDisconnected yields zero flow and the source component as cut side.
func (s *FlowSuite) TestDisconnected() {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(2, 3, 2)

	res, err := s.run(g, 0, 3, flow.DefaultOptions())
	s.Require().NoError(err)
	s.Zero(res.Value)
	s.Zero(res.Augmentations)
	s.Equal([]int{0, 1}, res.SourceSide)
	s.Empty(res.CutEdges)
}

// TestErrors covers endpoint validation and cancellation.
func (s *FlowSuite) TestErrors() {
	g, _ := diamond(s.T())
	_, err := s.run(nil, 0, 1, flow.DefaultOptions())
	s.ErrorIs(err, flow.ErrGraphNil)

	_, err = s.run(g, 9, 1, flow.DefaultOptions())
	s.ErrorIs(err, flow.ErrSourceNotFound)

	_, err = s.run(g, 0, 9, flow.DefaultOptions())
	s.ErrorIs(err, flow.ErrSinkNotFound)

	_, err = s.run(g, 2, 2, flow.DefaultOptions())
	s.ErrorIs(err, flow.ErrSourceIsSink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.run(g, 0, 3, flow.FlowOptions{Ctx: ctx})
	s.ErrorIs(err, context.Canceled)
}

// TestZeroValueOptions uses FlowOptions{} without DefaultOptions.
func (s *FlowSuite) TestZeroValueOptions() {
	g, _ := diamond(s.T())
	res, err := s.run(g, 3, 0, flow.FlowOptions{})
	s.Require().NoError(err)
	s.Equal(int64(5), res.Value)
}

// randomGraph builds a G(n, p) graph with capacities 0..9.
func randomGraph(rng *rand.Rand, n int, p float64) *core.Graph {
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				_, _ = g.AddEdge(u, v, rng.Int63n(10))
			}
		}
	}

	return g
}

// cutCapacity sums the capacities of the listed edges.
func cutCapacity(t *testing.T, g *core.Graph, ids []uint64) int64 {
	var sum int64
	for _, id := range ids {
		e, err := g.GetEdge(id)
		require.NoError(t, err)
		sum += e.Capacity()
	}

	return sum
}

// TestAlgorithmsAgree cross-checks the three algorithms and the max-flow
// min-cut equality on random graphs.
func TestAlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		g := randomGraph(rng, 12, 0.3)
		want, err := flow.RunEdmondsKarp(g, 0, 11, flow.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, want.Value, cutCapacity(t, g, want.CutEdges), "graph %d", i)

		for _, alg := range []flow.Algorithm{flow.Dinic, flow.FordFulkerson} {
			opts := flow.DefaultOptions()
			opts.Algorithm = alg
			got, err := flow.MaxFlow(g, 0, 11, opts)
			require.NoError(t, err)
			require.Equal(t, want.Value, got.Value, "graph %d %s", i, alg)
			require.Equal(t, want.SourceSide, got.SourceSide, "graph %d %s", i, alg)
		}

		rebuild := flow.DefaultOptions()
		rebuild.LevelRebuildInterval = 1
		got, err := flow.RunDinic(g, 0, 11, rebuild)
		require.NoError(t, err)
		require.Equal(t, want.Value, got.Value, "graph %d rebuild", i)
	}
}

func TestMaxFlow_BadAlgorithm(t *testing.T) {
	g, _ := diamond(t)
	_, err := flow.MaxFlow(g, 0, 3, flow.FlowOptions{Algorithm: flow.Algorithm(7)})
	require.ErrorIs(t, err, flow.ErrBadAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []flow.Algorithm{flow.Dinic, flow.EdmondsKarp, flow.FordFulkerson} {
		got, err := flow.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	_, err := flow.ParseAlgorithm("push-relabel")
	require.ErrorIs(t, err, flow.ErrBadAlgorithm)
}

func TestLogger(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 7)
	opts := flow.DefaultOptions()
	opts.Logger = log
	_, err := flow.RunEdmondsKarp(g, 0, 1, opts)
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	require.Equal(t, "pushed 7, total 7", entry.Message)
	require.Equal(t, "edmonds-karp", entry.Data["algorithm"])
}
