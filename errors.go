package sierpinski

import "errors"

var (
	// ErrNegativeIterations is returned when a negative iteration count is
	// requested.
	ErrNegativeIterations = errors.New("sierpinski: iteration count must not be negative")

	// ErrUnknownKind is returned for a fractal name or Kind value that does
	// not identify a known fractal.
	ErrUnknownKind = errors.New("sierpinski: unknown fractal kind")
)
