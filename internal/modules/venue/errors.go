package venue

import "errors"

var (
	ErrValidation = errors.New("validation error")
	// ErrNotFound covers missing and out-of-scope venues alike.
	ErrNotFound = errors.New("not found")
)
