package timeline

import "errors"

// Errors reported for caller contract violations. They are returned wrapped
// with context, so compare with errors.Is.
var (
	ErrDuplicateKeyframeTime = errors.New("keyframe already exists at time")
	ErrUnregisteredTarget    = errors.New("target not registered")
	ErrDuplicateRegistration = errors.New("target already registered")
	ErrMissingField          = errors.New("missing required field")
)
