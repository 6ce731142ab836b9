package scheduling

import (
	"errors"
	"fmt"
)

// ConflictError signals that the requested slot is taken. It is an expected,
// retryable condition: the caller should re-fetch availability and let the
// user pick again, not resubmit the same slot.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflictError(reason string) error {
	return &ConflictError{Reason: reason}
}

// IsConflict reports whether err is a slot conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// ValidationError signals malformed or out-of-policy input. Surfaced as a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
