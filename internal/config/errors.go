package config

import (
	"errors"
)

var (
	// ErrNumberMustBePositive error if generator.number is below 1.
	ErrNumberMustBePositive = errors.New("config generator.number must be at least 1")

	// ErrLengthIsNegative error if generator.length is below 0.
	ErrLengthIsNegative = errors.New("config generator.length can not be negative")
)
