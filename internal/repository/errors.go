package repository

import "errors"

// ErrNotFound is returned when a row does not exist or sits outside the
// caller's scope; the two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a booking would overlap an existing
// non-cancelled booking at the same location and date.
var ErrConflict = errors.New("conflict")
