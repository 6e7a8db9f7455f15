// Package dijkstra finds least-capacity paths in a core.Graph.
//
// pathdist normally drains fewest-hop paths (package bfs). With
// pathdist.WithWeightedPaths it drains the path of smallest total capacity
// instead, using ShortestPath from this package.
//
// Key features:
//
//   - Edge length is Edge.Capacity(): weight 0 reads as 1.
//   - WithMaxDistance stops exploring beyond a distance cap.
//   - WithInfEdgeThreshold treats heavy edges as impassable.
//   - WithTarget ends the search once the target is final.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key
//
// Errors:
//
//   - ErrNilGraph, ErrVertexNotFound on bad input.
//   - ErrNoPath from PathTo/ShortestPath when the target is unreachable.
//   - Option constructors panic with ErrBadMaxDistance / ErrBadInfThreshold.
package dijkstra
