// Package matrix provides the small dense linear-algebra surface needed to
// score graphs by adjacency: a row-major Dense matrix, matrix-vector product,
// transpose, tolerance comparison and an adjacency export from core.Graph.
//
// What
//
//   - Matrix interface with bounds-checked At/Set and deep Clone.
//   - Dense: flat row-major storage (offset = i*cols + j).
//   - MatVec (y = M·x) and Transpose, both with a *Dense fast path.
//   - AllClose for vectors with |a-b| ≤ atol + rtol·|b| per element.
//   - NewAdjacency: symmetric n×n matrix of edge capacities (or 0/1).
//
// Determinism
//
//	All loops run in fixed i→j order and no map iteration is involved, so
//	repeated calls on equal inputs yield bit-identical results.
//
// Errors
//
//	Every failure is one of the sentinels in errors.go, wrapped with the
//	operation name; match with errors.Is.
package matrix
