// ABOUTME: Standard HTTP client implementation for authenticated JSON GET requests
// ABOUTME: Maps non-2xx responses and undecodable bodies onto the core error taxonomy

package standard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	coreerrors "dip-digest/core/errors"
)

const (
	// DefaultUserAgent identifies the digest bot to the API
	DefaultUserAgent = "dip-digest-bot/weekly/1.0"

	// DefaultTimeout is the per-request ceiling
	DefaultTimeout = 90 * time.Second
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: DefaultUserAgent,
	}
}

// WithUserAgent overrides the fallback User-Agent sent when the caller sets none
func (c *StandardHTTPClient) WithUserAgent(userAgent string) *StandardHTTPClient {
	if userAgent != "" {
		c.userAgent = userAgent
	}
	return c
}

// GetJSON performs an HTTP GET request and decodes the JSON body into dest.
// There is no retry: a single failure is returned to the caller.
func (c *StandardHTTPClient) GetJSON(ctx context.Context, url string, headers map[string]string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &coreerrors.TransportError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &coreerrors.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &coreerrors.TransportError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &coreerrors.TransportError{StatusCode: resp.StatusCode, URL: url, Err: err}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return &coreerrors.DecodeError{URL: url, Err: fmt.Errorf("empty body")}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &coreerrors.DecodeError{URL: url, Err: err}
	}

	return nil
}
