package payment

import "errors"

var (
	ErrNotFound      = errors.New("booking not found")
	ErrNotPending    = errors.New("booking payment is not pending")
	ErrNotConfigured = errors.New("payment gateway not configured")
)
