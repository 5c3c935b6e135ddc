package bfs

import "errors"

var (
	// ErrUnavailableStartingPosition is returned when no start was given and
	// no cell satisfies the usable predicate.
	ErrUnavailableStartingPosition = errors.New("bfs: no usable starting position")
	// ErrStartingPositionOutOfBounds is returned when an explicit start lies
	// outside the grid.
	ErrStartingPositionOutOfBounds = errors.New("bfs: starting position out of bounds")
	// ErrMissingMark is returned when Options has no Mark function.
	ErrMissingMark = errors.New("bfs: mark function is required")
)
