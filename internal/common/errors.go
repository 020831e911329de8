// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Store errors.
	ErrNotFound          = errors.New("not found")
	ErrProtectedCategory = errors.New("default categories cannot be removed")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidOption     = errors.New("invalid option kind")

	// Transport errors.
	ErrTransport = errors.New("transport failure")

	// Snapshot errors.
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsTransport reports whether err stems from the remote backend being
// unreachable or unusable, as opposed to a domain precondition failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
