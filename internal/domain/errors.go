package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrExternalService marks a failed or rejected call to a remote provider.
	ErrExternalService = errors.New("external service error")
	// ErrMalformedResponse marks a provider response that could not be decoded
	// or lacked a required field. It always travels inside an ExternalServiceError.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNotAllowed is returned when an authenticated principal is not the permitted one.
	ErrNotAllowed = errors.New("user not allowed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ExternalServiceError describes a failed call to a remote provider.
// Status is zero when the request never produced a response; in that case
// Err carries the transport error. Body holds the raw response body for
// diagnostics and must not be shown to end users.
type ExternalServiceError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *ExternalServiceError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": external service error"
	}
}

// Unwrap exposes both ErrExternalService and the underlying cause.
func (e *ExternalServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExternalService}
	}
	return []error{ErrExternalService, e.Err}
}
