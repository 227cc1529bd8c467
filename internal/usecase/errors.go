package usecase

import "errors"

// Sentinel errors classifying every business-rule failure. Handlers map
// them onto HTTP status codes with errors.Is; anything not wrapped here is
// treated as an internal error and hidden from the client.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
