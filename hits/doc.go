// Package hits computes Hyperlink-Induced Topic Search authority and hub
// scores for a square adjacency matrix and compares two matrices by their
// sorted score spectra.
//
// Score runs power iteration from all-ones vectors:
//
//	authority ← Aᵀ · hub,       then L2-normalize
//	hub       ← A  · authority, then L2-normalize
//
// for a fixed number of steps (DefaultSteps unless WithSteps). There is no
// convergence check by default; WithTolerance adds an early stop when both
// vectors move less than tol (L2) in one step.
//
// Compare sorts each vector ascending before testing element-wise closeness,
// so it measures how importance is distributed, not which node holds it.
// Isomorphic graphs therefore compare as similar.
//
// Errors
//
//   - ErrNonSquare  the matrix is not n×n.
//   - ErrZeroVector normalization met an all-zero vector (e.g. a graph with no edges).
//   - ErrOptionViolation for negative steps or tolerances.
package hits
