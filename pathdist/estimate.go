package pathdist

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphsim/bfs"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/dijkstra"
	"github.com/katalvlaran/graphsim/dtw"
	"github.com/katalvlaran/graphsim/matching"
	"github.com/katalvlaran/graphsim/profile"
)

// Estimate drains shortest paths between matched endpoints of g1 (graph A)
// and g2 (graph B) and returns the distance between their path-sum sequences.
//
// m must contain at least two distinct pairs. Unless WithConsumeInputs is
// given, g1 and g2 are not modified.
func Estimate(g1, g2 *core.Graph, m matching.Matching, opts ...Option) (*Result, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !hasTwoDistinct(m) {
		return nil, fmt.Errorf("Estimate: %d pairs: %w", len(m), ErrTooFewPairs)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(defaultSeed))
	}

	source, sink := pickEndpoints(m, o)
	ends, err := decodeEndpoints(source, sink)
	if err != nil {
		return nil, err
	}
	if !g1.HasVertex(ends.SourceA) || !g1.HasVertex(ends.SinkA) {
		return nil, fmt.Errorf("Estimate: graph A endpoints %d→%d: %w", ends.SourceA, ends.SinkA, ErrEndpointNotFound)
	}
	if !g2.HasVertex(ends.SourceB) || !g2.HasVertex(ends.SinkB) {
		return nil, fmt.Errorf("Estimate: graph B endpoints %d→%d: %w", ends.SourceB, ends.SinkB, ErrEndpointNotFound)
	}

	if !o.consume {
		g1, g2 = g1.Clone(), g2.Clone()
	}
	bound := len(m) * len(m)
	if o.maxIters > 0 {
		bound = o.maxIters
	}

	res := &Result{
		WeightsA:  []int64{},
		WeightsB:  []int64{},
		Bound:     bound,
		Source:    source,
		Sink:      sink,
		Endpoints: ends,
		Metric:    o.metric,
	}
	find := o.pathFinder()
	for res.Iterations < bound {
		pa, err := find(g1, ends.SourceA, ends.SinkA)
		if err != nil {
			return nil, fmt.Errorf("Estimate: graph A: %w", err)
		}
		pb, err := find(g2, ends.SourceB, ends.SinkB)
		if err != nil {
			return nil, fmt.Errorf("Estimate: graph B: %w", err)
		}
		if pa == nil || pb == nil {
			res.Exhausted = exhaustedOf(pa == nil, pb == nil)
			break
		}
		wa, err := drain(g1, pa)
		if err != nil {
			return nil, fmt.Errorf("Estimate: graph A: %w", err)
		}
		wb, err := drain(g2, pb)
		if err != nil {
			return nil, fmt.Errorf("Estimate: graph B: %w", err)
		}
		res.WeightsA = append(res.WeightsA, wa)
		res.WeightsB = append(res.WeightsB, wb)
		res.Iterations++
	}

	if o.drainAll {
		var err error
		switch res.Exhausted {
		case GraphA:
			res.WeightsB, err = drainRest(g2, ends.SourceB, ends.SinkB, bound, res.WeightsB, find)
		case GraphB:
			res.WeightsA, err = drainRest(g1, ends.SourceA, ends.SinkA, bound, res.WeightsA, find)
		}
		if err != nil {
			return nil, fmt.Errorf("Estimate: remainder: %w", err)
		}
	}

	if res.Distance, err = sequenceDistance(res.WeightsA, res.WeightsB, o); err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}

	return res, nil
}

// drainRest keeps draining s→t paths of g into sums until none is left or
// len(sums) reaches bound.
func drainRest(g *core.Graph, s, t, bound int, sums []int64, find pathFinder) ([]int64, error) {
	for len(sums) < bound {
		p, err := find(g, s, t)
		if err != nil || p == nil {
			return sums, err
		}
		w, err := drain(g, p)
		if err != nil {
			return sums, err
		}
		sums = append(sums, w)
	}

	return sums, nil
}

func sequenceDistance(a, b []int64, o options) (float64, error) {
	va, vb := toVector(a), toVector(b)
	if o.metric == Euclidean || len(va) == 0 || len(vb) == 0 {
		return profile.Distance(va, vb), nil
	}
	window := o.window
	if window > 0 {
		window = max(window, len(va)-len(vb), len(vb)-len(va))
	}

	return dtw.Distance(va, vb,
		dtw.WithWindow(window), dtw.WithSlopePenalty(o.penalty), dtw.WithRollingRows())
}

// hasTwoDistinct reports whether m holds at least two pairs that differ.
func hasTwoDistinct(m matching.Matching) bool {
	for i := 1; i < len(m); i++ {
		if !m[i].Equal(m[0]) {
			return true
		}
	}

	return false
}

// pickEndpoints returns the configured pairs or samples two distinct ones,
// resampling the sink until it differs from the source.
func pickEndpoints(m matching.Matching, o options) (matching.Pair, matching.Pair) {
	if o.source != nil {
		return *o.source, *o.sink
	}
	source := m[o.rng.Intn(len(m))]
	sink := m[o.rng.Intn(len(m))]
	for sink.Equal(source) {
		sink = m[o.rng.Intn(len(m))]
	}

	return source, sink
}

func decodeEndpoints(source, sink matching.Pair) (Endpoints, error) {
	sa, sb, err := source.Decode()
	if err != nil {
		return Endpoints{}, fmt.Errorf("%w: source: %w", ErrBadLabel, err)
	}
	ta, tb, err := sink.Decode()
	if err != nil {
		return Endpoints{}, fmt.Errorf("%w: sink: %w", ErrBadLabel, err)
	}

	return Endpoints{SourceA: sa, SourceB: sb, SinkA: ta, SinkB: tb}, nil
}

// pathFinder returns nil, nil when t is unreachable from s.
type pathFinder func(g *core.Graph, s, t int) ([]int, error)

// pathFinder picks fewest-hop (bfs) or least-capacity (dijkstra) search,
// hiding edges at or above the impassable capacity when one is set.
func (o options) pathFinder() pathFinder {
	if o.weighted {
		return func(g *core.Graph, s, t int) ([]int, error) {
			dopts := []dijkstra.Option{dijkstra.WithTarget(t)}
			if o.wall > 0 {
				dopts = append(dopts, dijkstra.WithInfEdgeThreshold(o.wall))
			}
			res, err := dijkstra.Dijkstra(g, s, dopts...)
			if err != nil {
				return nil, err
			}
			p, err := res.PathTo(t)
			if errors.Is(err, dijkstra.ErrNoPath) {
				return nil, nil
			}

			return p, err
		}
	}

	return func(g *core.Graph, s, t int) ([]int, error) {
		bopts := []bfs.Option{bfs.WithTarget(t)}
		if o.wall > 0 {
			bopts = append(bopts, bfs.WithFilterNeighbor(func(u, v int) bool {
				e, err := g.EdgeBetween(u, v)
				return err == nil && e.Capacity() < o.wall
			}))
		}
		res, err := bfs.BFS(g, s, bopts...)
		if err != nil {
			return nil, err
		}
		p, err := res.PathTo(t)
		if errors.Is(err, bfs.ErrNoPath) {
			return nil, nil
		}

		return p, err
	}
}

// drain removes every edge along path from g and returns their capacity sum.
func drain(g *core.Graph, path []int) (int64, error) {
	var sum int64
	for i := 0; i+1 < len(path); i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += e.Capacity()
		if err = g.RemoveEdge(e.ID); err != nil {
			return 0, err
		}
	}

	return sum, nil
}

func exhaustedOf(noA, noB bool) Exhausted {
	switch {
	case noA && noB:
		return Both
	case noA:
		return GraphA
	default:
		return GraphB
	}
}

func toVector(w []int64) profile.Vector {
	v := make(profile.Vector, len(w))
	for i, x := range w {
		v[i] = float64(x)
	}

	return v
}
