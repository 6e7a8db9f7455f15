// Package builder provides deterministic constructors for the capacity graphs
// the similarity pipeline compares.
//
// What
//
//   - RandomCapacity(n, m): uniform G(n,m) random undirected graph with an
//     integer capacity drawn uniformly from [1, maxCap] on every edge.
//   - Complete(n), Cycle(n): fixed fixtures weighted by the configured WeightFn.
//   - Relabel(g, perm): an isomorphic copy with vertex i renamed perm[i].
//
// Constructors compose through BuildGraph, which runs them in order on one
// graph. Each constructor appends its own vertices after the ones already
// present, so BuildGraph(nil, nil, Cycle(3), Cycle(4)) yields two disjoint cycles.
//
// Determinism
//
//	Stochastic constructors draw only from the configured *rand.Rand
//	(WithSeed/WithRand). Equal seed, options and constructor order give
//	identical graphs, including edge insertion order.
//
// Errors
//
//	Only the sentinels in errors.go, wrapped with the constructor name.
//	Option constructors panic on programmer errors (nil function, nil RNG,
//	capacity < 1).
package builder
