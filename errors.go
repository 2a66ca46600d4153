package swoop

import "errors"

var (
	// ErrConfig is returned when an animation, spline, preset or script is
	// constructed from invalid parameters.
	ErrConfig = errors.New("swoop: invalid configuration")

	// ErrClosed is returned when a Manager is used after Close.
	ErrClosed = errors.New("swoop: manager closed")
)
