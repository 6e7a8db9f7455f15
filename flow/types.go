package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	ErrGraphNil       = errors.New("flow: graph is nil")
	ErrSourceNotFound = errors.New("flow: source vertex not found")
	ErrSinkNotFound   = errors.New("flow: sink vertex not found")
	ErrSourceIsSink   = errors.New("flow: source and sink are the same vertex")
	ErrBadAlgorithm   = errors.New("flow: unknown algorithm")
)

// Algorithm selects the augmenting strategy used by MaxFlow.
type Algorithm int

const (
	// Dinic builds level graphs and pushes blocking flows.
	Dinic Algorithm = iota
	// EdmondsKarp augments along fewest-edge paths found by BFS.
	EdmondsKarp
	// FordFulkerson augments along any path found by DFS.
	FordFulkerson
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	case FordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{Dinic, EdmondsKarp, FordFulkerson} {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, name)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation, checked before each augmentation.
//   - Algorithm: used by MaxFlow only.
//   - Logger: if set, each augmentation is logged at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations (0 = never early).
type FlowOptions struct {
	Ctx                  context.Context
	Algorithm            Algorithm
	Logger               logrus.FieldLogger
	LevelRebuildInterval int
}

// DefaultOptions returns Background context, Dinic, no logging.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// Value is the total flow from source to sink.
	Value int64

	// Augmentations counts the augmenting pushes performed.
	Augmentations int

	// SourceSide lists, ascending, the vertices still reachable from the
	// source in the final residual network: the source side of a minimum cut.
	SourceSide []int

	// CutEdges lists, ascending, the IDs of edges crossing that cut.
	CutEdges []uint64
}
