package domain

import "errors"

// Sentinel errors for the authentication flow. Backend status codes are
// mapped onto these so callers can match them with errors.Is.
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrMissingFields      = errors.New("required fields are missing")
)
