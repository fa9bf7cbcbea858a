package generator

import "errors"

var (
	// ErrInsufficientUniqueFlags is returned if the attempt budget ran out before the batch was complete.
	ErrInsufficientUniqueFlags = errors.New("could not generate enough unique flags, try a smaller count or a larger token length")

	// ErrInvalidRequest is returned if a Request fails validation.
	ErrInvalidRequest = errors.New("invalid generation request")
)
