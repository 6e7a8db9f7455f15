package similarity

import "errors"

var (
	// ErrGraphNil is returned if either input graph is nil.
	ErrGraphNil = errors.New("similarity: graph is nil")

	// ErrEmptyGraph is returned if either input graph has no vertices.
	ErrEmptyGraph = errors.New("similarity: graph has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")

	// ErrNilGenerator is returned by RunTrials when gen is nil.
	ErrNilGenerator = errors.New("similarity: nil trial generator")
)
