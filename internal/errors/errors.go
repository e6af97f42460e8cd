// Package errors provides shared error types for the clinical trials
// registry client.
package errors

import (
	"errors"
	"fmt"
)

// RetrievalError indicates the registry could not be reached or answered
// with a non-2xx status. It wraps the underlying cause so the tool
// boundary can surface a single human-readable message.
type RetrievalError struct {
	Endpoint   string // API path, e.g. "/studies"
	StatusCode int    // HTTP status, 0 for transport failures
	Message    string // response detail or transport error text
	Err        error  // underlying cause, may be nil
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("registry request %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("registry request %s failed: %s", e.Endpoint, e.Message)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a study was not found in the registry.
type NotFoundError struct {
	NCTID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("study not found: %s", e.NCTID)
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsRetrieval returns true if the error is a RetrievalError.
func IsRetrieval(err error) bool {
	var re *RetrievalError
	return errors.As(err, &re)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
