// ABOUTME: Custom error types for the fetch, filter and persist pipeline
// ABOUTME: Separates fatal startup/list errors from per-item failures recorded as data

package errors

import (
	"errors"
	"fmt"
)

// NoTextMessage is recorded when the detail endpoint returns no usable text
const NoTextMessage = "no text from drucksache-text API"

// ConfigError represents a missing or invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error on '%s': %s", e.Field, e.Message)
}

// TransportError represents a failed request or a non-2xx response.
// StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	URL        string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that is not valid JSON
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NoTextError represents a detail response without usable text
type NoTextError struct {
	ID string
}

// Error implements the error interface
func (e *NoTextError) Error() string {
	return NoTextMessage
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsNoText checks if an error is a NoTextError
func IsNoText(err error) bool {
	var noTextErr *NoTextError
	return errors.As(err, &noTextErr)
}

// StatusCode returns the HTTP status carried by a TransportError, or 0
func StatusCode(err error) int {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}
	return 0
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
