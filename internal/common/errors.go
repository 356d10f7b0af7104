// Package common defines sentinel errors and small helpers shared by the
// storage, service and presentation layers of HouseSell. Callers should use
// errors.Is to match these values; detailed errors wrap them with %w.
package common

import "errors"

var (
	// Session errors.
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("you must be logged in")

	// Listing errors.
	ErrNotFound      = errors.New("property not found")
	ErrNotAuthorized = errors.New("you are not authorized to modify this property")

	// Input errors. Wrapped with the name of the offending field.
	ErrValidation = errors.New("validation error")

	// ErrStorage wraps any failure of the underlying blob store.
	ErrStorage = errors.New("storage failure")
)
