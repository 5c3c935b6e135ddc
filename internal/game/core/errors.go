package core

import "errors"

var (
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrMalformedGrid = errors.New("grid rows differ in length")
)
