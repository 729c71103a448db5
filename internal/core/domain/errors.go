package domain

import "errors"

var ErrMissingCredentials = errors.New("email and password are required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")
var ErrProductNotFound = errors.New("product not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists for this client")

// ValidationErrors maps a field path to a human-readable message. It is
// returned by request validation and rendered verbatim in the
// {"errors": {...}} envelope with a 400 status.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "validation failed"
}
