package profile

import "errors"

var (
	// ErrGraphNil is returned when Build receives a nil graph.
	ErrGraphNil = errors.New("profile: graph is nil")

	// ErrEmptyProfiles is returned when a matcher has no candidates to pick from.
	ErrEmptyProfiles = errors.New("profile: no candidate profiles")
)
