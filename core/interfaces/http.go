package interfaces

import (
	"context"
)

// HTTPClient defines the interface for making JSON HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// GetJSON performs an HTTP GET request to the specified URL with the given
	// headers and decodes the JSON body into dest.
	// A non-2xx status or transport failure yields a TransportError, an
	// undecodable body a DecodeError. Implementations do not retry.
	GetJSON(ctx context.Context, url string, headers map[string]string, dest interface{}) error
}
