// ABOUTME: Error types and handling for the gist search library
// ABOUTME: Provides structured errors with context for library operations

package gistsearch

import (
	"errors"
	"fmt"

	coreerrors "gist-search-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a missing username or pattern
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypePattern indicates a pattern that does not compile
	ErrorTypePattern ErrorType = "pattern"

	// ErrorTypeUpstream indicates the gist API answered with an error status
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeNetwork indicates the gist API could not be reached
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when a search is attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// classify turns the cause of a failed search into a library error type
func classify(cause error) ErrorType {
	var apiErr *coreerrors.ExternalAPIError
	switch {
	case cause == nil:
		return ErrorTypeInternal
	case coreerrors.IsValidation(cause):
		return ErrorTypeValidation
	case coreerrors.IsPattern(cause):
		return ErrorTypePattern
	case errors.As(cause, &apiErr):
		if apiErr.StatusCode == 0 {
			return ErrorTypeNetwork
		}
		return ErrorTypeUpstream
	default:
		return ErrorTypeInternal
	}
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsPatternError checks if an error is an invalid pattern error
func IsPatternError(err error) bool {
	return isType(err, ErrorTypePattern)
}

// IsUpstreamError checks if an error came from an upstream error status
func IsUpstreamError(err error) bool {
	return isType(err, ErrorTypeUpstream)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// UpstreamStatus returns the HTTP status the gist API answered with, or 0
func UpstreamStatus(err error) int {
	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
