package render

import "errors"

// Sentinel errors for PNG rendering.
var (
	// ErrEmptyStack indicates a nil stack or a stack with no layers.
	ErrEmptyStack = errors.New("render: stack must contain at least one mode")
	// ErrNoPath indicates the renderer has no output path configured.
	ErrNoPath = errors.New("render: output path must not be empty")
)
