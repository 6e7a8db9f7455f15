// Package matching builds the bipartite similarity graph between two sets of
// node profiles and finds its maximum-weight matching.
//
// Labels
//
//	Both sides share one signed integer namespace: node i of graph A is
//	labeled i+1 and node j of graph B is labeled -(j+1). The sign alone tells
//	the side, so a Pair can be decoded regardless of orientation.
//
// Weights
//
//	Every A node is joined to every B node with weight
//	1 / (profile.Distance + Epsilon). Identical profiles weigh 1/Epsilon.
//
// Algorithm
//
//	MaxWeight runs the Hungarian (Kuhn–Munkres) method with potentials on the
//	|A|×|B| weight table, transposed when |A| > |B|. All weights are positive
//	on a complete bipartite graph, so the optimum always matches
//	min(|A|, |B|) pairs and the result is exact.
//
// Complexity
//
//   - NewSimilarityGraph: O(|A|·|B|·d).
//   - MaxWeight:          O(k²·K) with k = min(|A|,|B|), K = max(|A|,|B|).
//   - BruteForce:         O(K!/(K-k)!); capped at BruteForceLimit nodes per side.
package matching
