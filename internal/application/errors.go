package application

import "errors"

// Sentinel errors handlers map to HTTP statuses. Validation failures wrap
// ErrValidation with a field-specific message.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)
