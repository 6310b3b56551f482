package spectrum

import "errors"

var (
	// ErrEmptyInput is returned when a curve has no samples.
	ErrEmptyInput = errors.New("spectrum: input must not be empty")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("spectrum: x and y must have same length")
)
