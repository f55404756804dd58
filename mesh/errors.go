package mesh

import "errors"

// Sentinel errors for sampling-grid construction.
var (
	// ErrBadSize indicates a grid side length below one.
	ErrBadSize = errors.New("mesh: size must be a positive integer")
)
