// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API.
// StatusCode is 0 when the request never produced a response.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// PatternError reports a search pattern that is not a valid regular expression
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying syntax error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsPattern checks if an error is a PatternError
func IsPattern(err error) bool {
	var patternErr *PatternError
	return errors.As(err, &patternErr)
}

// UpstreamMessage returns the message an upstream API attached to err,
// or err's own text for any other error
func UpstreamMessage(err error) string {
	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
