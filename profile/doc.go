// Package profile builds per-node neighbor profiles and matches nodes of two
// graphs by profile distance.
//
// A profile is the multiset of capacities on a node's incident edges, sorted
// descending. Two profiles of different degree are compared by zero-padding
// the shorter one and taking the Euclidean distance; Distance is the single
// implementation of that rule and every matcher in the module goes through it.
//
// Matchers
//
//   - Closest: greedy nearest profile in B for each node of A (directional).
//   - Mutual: pairs on which Closest(A,B) and Closest(B,A) agree.
//
// Determinism
//
//	Build reads core.Graph.Edges in insertion order and sorts with a stable
//	sort; Closest breaks ties by lowest index. Equal inputs give equal output.
//
// Complexity
//
//   - Build:   O(E + V·d·log d) where d is the max degree.
//   - Closest: O(|A|·|B|·d).
package profile
