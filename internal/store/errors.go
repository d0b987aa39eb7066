// Package store defines the error taxonomy shared by repositories,
// services and handlers. Handlers map these to HTTP statuses; nothing
// else about a failure crosses the API boundary.
package store

import "errors"

var (
	// ErrNotFound: no record with the given id exists.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID: the id is not a well-formed identifier.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateEmail: a user with that email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnavailable: the backing store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// ValidationError reports bad or missing input on a mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
