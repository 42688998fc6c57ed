package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	// ErrNotFound covers both a missing booking/venue and one outside the
	// actor's scope; callers must not be able to tell them apart.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("time slot already booked at this location")
)
