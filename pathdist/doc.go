// Package pathdist estimates how differently two graphs route capacity
// between corresponding endpoints.
//
// Given a node matching between graphs A and B, Estimate picks a source pair
// and a distinct sink pair from the matching, then repeatedly:
//
//  1. finds the fewest-hop source→sink path in each graph (bfs.ShortestPath),
//  2. records the sum of edge capacities along it,
//  3. deletes every edge of that path.
//
// Draining stops after |matching|² rounds or as soon as either graph runs out
// of paths. The score is the Euclidean distance between the two sequences of
// path sums, the shorter one zero-padded (profile.Distance).
//
// Variants
//
//	WithWeightedPaths drains least-capacity paths (package dijkstra).
//	WithDrainRemainder keeps draining the surviving graph after the other
//	ran dry, so the sequences can differ in length. WithMetric(Warped)
//	compares them with dynamic time warping (package dtw), optionally
//	banded by WithWarpWindow and with WithWarpPenalty on off-diagonal steps.
//	WithImpassableCapacity hides heavy edges from both path searches.
//
// Ownership
//
//	By default both graphs are cloned first and the caller's instances are
//	left untouched. WithConsumeInputs drains the inputs in place; callers must
//	not read them concurrently and should treat them as spent afterwards.
//
// Exhaustion
//
//	Running out of paths is a normal stop, not an error. Result.Exhausted
//	says which graph ran dry first; the sums collected so far are still valid.
//
// Randomness
//
//	Endpoint sampling uses math/rand. WithSeed / WithRand make runs
//	reproducible and WithEndpoints bypasses sampling entirely.
package pathdist
