package profile

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrEmailTaken    = errors.New("email already registered")
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrNotFound      = errors.New("user not found")
)
