package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInvalidTimestamp indicates the caller-supplied instant did not parse
	ErrorTypeInvalidTimestamp ErrorType = "INVALID_TIMESTAMP"

	// ErrorTypeBackendUnavailable indicates the persistence layer failed or timed out
	ErrorTypeBackendUnavailable ErrorType = "BACKEND_UNAVAILABLE"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// TypeOf returns the ErrorType of err if it is (or wraps) an AppError,
// and ErrorTypeInternal otherwise.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// NewInvalidTimestampError creates an error for an unparseable instant.
// The offending field is named so the caller knows what to fix.
func NewInvalidTimestampError(field, value string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTimestamp,
		Message: fmt.Sprintf("%s is not a valid ISO-8601 instant: %q", field, value),
	}
}

// NewBackendUnavailableError creates a new backend unavailable error
func NewBackendUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeBackendUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}
