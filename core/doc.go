// Package core provides the in-memory capacity Graph that graphsim compares.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - V is fixed to the integer range 0..n-1 (AddVertex appends n).
//   - E holds undirected edges with an int64 weight ("capacity").
//     Weight 0 stores an unweighted edge; Edge.Capacity() reads it as DefaultWeight.
//   - No self-loops, no parallel edges, no negative weights.
//   - Incidence lists keep insertion order, so every consumer (profiles, BFS,
//     adjacency export) is deterministic for a fixed sequence of AddEdge calls.
//
// Core Methods:
//
//	// Vertices
//	AddVertex() int                          // O(1)
//	HasVertex(v int) bool                    // O(1)
//	Vertices() []int                         // O(n)
//	Degree(v int) (int, error)               // O(1)
//
//	// Edges
//	AddEdge(u, v int, w int64) (uint64, error) // O(1)
//	RemoveEdge(id uint64) error                // O(deg)
//	RemoveEdgeBetween(u, v int) error          // O(deg)
//	HasEdge(u, v int) bool                     // O(1)
//	EdgeBetween(u, v int) (*Edge, error)       // O(1)
//	Edges() []*Edge                            // O(E log E), insertion order
//
//	// Neighborhood
//	Neighbors(v int) ([]*Edge, error)        // O(deg), insertion order
//	NeighborIDs(v int) ([]int, error)        // O(deg), insertion order
//
//	// Cloning
//	Clone() *Graph                           // O(n+E), same IDs and order
//	CloneEmpty() *Graph                      // O(n)
//	Clear()                                  // O(n)
//
// Algorithms that destroy edges (pathdist) work on Clone() copies unless the
// caller explicitly hands over ownership.
package core
