// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - OnVisit hook may abort the search with an error.
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the layers.
//   - WithTarget stops as soon as a destination is discovered.
//
// Why
//
//	pathdist drains shortest paths one at a time between matched endpoints;
//	it needs the fewest-hop route on a weighted graph, so unlike a weighted
//	search this package never reads Edge.Weight.
//
// Determinism
//
//	core.Graph.Neighbors returns incident edges in insertion order and BFS
//	enqueues neighbors in that order, so visit sequence and the chosen path
//	among equal-length alternatives are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth or Target).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - ErrNoPath               from PathTo/ShortestPath when unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
