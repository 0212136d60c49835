package model

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned while the classifier artifact is not
// loaded. It persists until the process is restarted with a valid artifact.
var ErrModelUnavailable = errors.New("classifier is not loaded")

// ValidationError marks bad client input: unknown city, day count out of
// range or an unparseable date. Mapped to 400 at the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a request field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// FeatureMismatchError means the derived feature set does not match what the
// classifier was trained on. This is a deployment misconfiguration, not a
// request-time condition, and is never retried.
type FeatureMismatchError struct {
	Column string
	Reason string
}

func (e *FeatureMismatchError) Error() string {
	return fmt.Sprintf("feature mismatch on column %q: %s", e.Column, e.Reason)
}
