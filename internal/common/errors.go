// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rendering errors.
	ErrRendererNotReady = errors.New("document renderer not initialized")

	// Catalog errors.
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
	ErrProductNotFound    = errors.New("product not found")

	// Persistence errors.
	ErrQuoteNotSaved    = errors.New("quote could not be saved")
	ErrDocumentNotSaved = errors.New("document could not be saved")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")

	// Wizard errors.
	ErrInvalidTransition = errors.New("invalid wizard step transition")

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

// UserMessage extracts the message that should be surfaced for err. The
// collaborator's own message wins when one is attached.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
