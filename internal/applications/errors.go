package applications

import "errors"

var (
	// ErrNotFound indicates no application matched the given id.
	ErrNotFound = errors.New("application not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResumeRequired indicates a submission without resume bytes.
	ErrResumeRequired = errors.New("resume is required")
)
