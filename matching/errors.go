package matching

import "errors"

var (
	// ErrBadLabel is returned when a label is 0 or both ends of a pair sit on one side.
	ErrBadLabel = errors.New("matching: invalid node label")

	// ErrLabelRange is returned when a label points past the graph's side.
	ErrLabelRange = errors.New("matching: label out of range")

	// ErrNodeReused is returned when a matching uses the same node twice.
	ErrNodeReused = errors.New("matching: node used by more than one pair")

	// ErrTooLarge is returned by BruteForce beyond BruteForceLimit.
	ErrTooLarge = errors.New("matching: graph too large for brute force")

	// ErrNilGraph is returned when a nil *SimilarityGraph is supplied.
	ErrNilGraph = errors.New("matching: similarity graph is nil")
)
