package reorder

import "errors"

// Sentinel errors returned when building a Controller.
var (
	// ErrInvalidOptions is returned when an option value is out of range.
	ErrInvalidOptions = errors.New("invalid reorder options")

	// ErrNilHost is returned when no host list is supplied.
	ErrNilHost = errors.New("reorder host is required")

	// ErrNilAnimator is returned when no animator is supplied.
	ErrNilAnimator = errors.New("reorder animator is required")
)
