package uniuri

import "errors"

var (
	// ErrAlphabetSize is returned if an alphabet has fewer than 2 or more than 256 symbols.
	ErrAlphabetSize = errors.New("uniuri: alphabet must hold between 2 and 256 symbols")

	// ErrNegativeLength is returned if a negative output length was requested.
	ErrNegativeLength = errors.New("uniuri: length can not be negative")
)
