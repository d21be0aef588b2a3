package actorio

import "errors"

const Namespace = "actorio"

var (
	// ErrInvalidConfig is returned by New when a supplied Config fails
	// validation.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
