package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels shared by every layer. Transport maps them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")

	// ErrUpstreamUnavailable marks a failed or unparsable call to the
	// nutrition estimator or the meal-plan generator.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// ValidationError collects every rejected field of one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		parts[i] = f.String()
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors rejects several fields at once.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// FieldErrorsOf returns the field errors carried anywhere in err's chain,
// or nil.
func FieldErrorsOf(err error) []FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}

// Upstream tags err as ErrUpstreamUnavailable. The cause, for example a
// *ValidationError describing a malformed response, stays reachable.
func Upstream(source string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", source, ErrUpstreamUnavailable, err)
}
