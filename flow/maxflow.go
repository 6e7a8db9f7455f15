package flow

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// MaxFlow computes the maximum flow from source to sink in the undirected
// graph g, treating each edge as a pipe of Capacity() usable in either
// direction, with the algorithm chosen by opts.Algorithm.
func MaxFlow(g *core.Graph, source, sink int, opts FlowOptions) (*Result, error) {
	switch opts.Algorithm {
	case Dinic:
		return RunDinic(g, source, sink, opts)
	case EdmondsKarp:
		return RunEdmondsKarp(g, source, sink, opts)
	case FordFulkerson:
		return RunFordFulkerson(g, source, sink, opts)
	default:
		return nil, fmt.Errorf("MaxFlow: %w: %d", ErrBadAlgorithm, int(opts.Algorithm))
	}
}

// prepare validates the endpoints and builds the residual network.
func prepare(g *core.Graph, source, sink int, opts *FlowOptions) (*network, error) {
	opts.normalize()
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSourceIsSink, source)
	}
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	return buildNetwork(g), nil
}

func (o FlowOptions) logPush(pushed, total int64) {
	if o.Logger == nil {
		return
	}
	o.Logger.WithField("algorithm", o.Algorithm.String()).
		Debugf("pushed %d, total %d", pushed, total)
}
