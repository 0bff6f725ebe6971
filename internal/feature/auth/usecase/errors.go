// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingCredentials is returned when the normalized email or the
	// password is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUserAlreadyExists is returned when attempting to register a user
	// whose username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned during login when the email or the
	// password is wrong. Both cases share this one error so callers cannot
	// tell registered emails apart from unregistered ones.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
