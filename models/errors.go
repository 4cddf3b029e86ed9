package models

import (
	"errors"
	"fmt"
)

// Application-wide errors. Services wrap these with context and handlers
// map them to HTTP statuses with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource already exists")
	ErrInternal        = errors.New("internal server error")

	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = fmt.Errorf("%w: token is invalid or expired", ErrUnauthenticated)
	// ErrInvalidCredentials is returned by login for unknown emails and wrong passwords alike.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
)
