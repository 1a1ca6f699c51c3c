package stipple

import "errors"

// Domain errors surfaced by the stippler. All of them are returned,
// never logged or retried internally.
var (
	// ErrSamplingExhausted indicates the rejection sampler could not find
	// enough dark pixels to place the requested number of points.
	ErrSamplingExhausted = errors.New("stipple: sampling exhausted, source too bright for the requested point count")

	// ErrDimensionMismatch indicates a luminance grid whose dimensions differ
	// from the ones the stippler was initialized with.
	ErrDimensionMismatch = errors.New("stipple: grid dimensions differ from the bound frame size")

	// ErrInvalidParams indicates an out-of-range configuration value.
	ErrInvalidParams = errors.New("stipple: invalid parameters")
)
