// Package dfs implements depth-first search, connected components and cycle
// detection on an undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre- and post-order hooks, cancellation via context.Context,
//     depth limiting, neighbor filtering and forest traversal.
//   - Components: connected components, each sorted, ordered by smallest vertex.
//   - CircuitRank: |E| - |V| + components, the number of independent cycles.
//   - FindCycle / HasCycle: White/Gray/Black coloring with back-edge detection.
//
// Why:
//
//	The similarity pipeline summarizes each input graph structurally before
//	matching: how many pieces it falls into and whether it is a forest.
//	Two graphs with different component counts cannot be isomorphic, which
//	is a useful sanity signal next to the spectral test.
//
// Complexity:
//
//   - DFS, FindCycle:       Time O(V+E), Memory O(V)
//   - Components:           Time O(V log V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrOptionViolation      negative MaxDepth
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
