package joboffers

import "errors"

var (
	// ErrNotFound indicates no posting matched the given id.
	ErrNotFound = errors.New("job offer not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
