// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadEdgeCount indicates a negative edge count.
var ErrBadEdgeCount = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadPermutation indicates that Relabel received something other than a
// permutation of 0..n-1.
var ErrBadPermutation = errors.New("builder: invalid permutation")

// ErrConstructFailed indicates a nil constructor or an unexpected core failure.
var ErrConstructFailed = errors.New("builder: construction failed")
