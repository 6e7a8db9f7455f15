// Package flow implements maximum-flow algorithms on an undirected
// *core.Graph, where every edge is a pipe of Edge.Capacity() usable in
// either direction.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson: any augmenting path via iterative DFS.
//     Time O(E · F), F = flow value.
//   - Edmonds–Karp: fewest-edge augmenting paths via BFS.
//     Time O(V · E²).
//   - Dinic: level graph + blocking flows.
//     Time O(V² · E); O(E · √V) on unit-capacity networks.
//
// All three share one residual network: each edge becomes a pair of arcs,
// one per direction, each starting at the full capacity. Pushing f along
// one arc adds f to its twin, so capacity freed in one direction is usable
// in the other.
//
// # API
//
//	res, err := flow.MaxFlow(g, s, t, flow.DefaultOptions())
//	res.Value      // max flow
//	res.SourceSide // vertices reachable from s in the final residual network
//	res.CutEdges   // edges of a minimum s-t cut; capacities sum to Value
//
// RunDinic, RunEdmondsKarp and RunFordFulkerson call a specific algorithm
// directly. FlowOptions carries cancellation, an optional logrus logger for
// per-augmentation debug output and Dinic's LevelRebuildInterval.
//
// # Determinism
//
// The residual network is built from core.Graph.Edges (ascending ID), so
// augmentation order and Augmentations are reproducible. Value and
// SourceSide are the same for every algorithm.
//
// # Errors
//
//   - ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink
//   - ErrBadAlgorithm from MaxFlow and ParseAlgorithm
//   - ctx.Err() when the context is cancelled
package flow
