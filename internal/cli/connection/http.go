// Package connection provides the authorized HTTP client for
// vidgate-cli.
//
// Every request is dispatched through Client, which attaches the
// stored bearer token when one exists and normalizes failures into a
// single human-readable message. The message priority is fixed: a
// server-reported error body wins, then the transport error, then a
// generic fallback naming the status code.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request round trip.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the stored bearer token.
type TokenSource interface {
	Get() (string, bool)
}

// Client dispatches authorized JSON requests to the API server.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
}

// New creates a client for the given server. A scheme-less server
// value gets http:// prepended.
func New(server string, tokens TokenSource) *Client {
	baseURL := strings.TrimRight(server, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// BaseURL returns the resolved server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get dispatches a GET request and decodes the response into target.
func (c *Client) Get(ctx context.Context, path string, target any) error {
	return c.do(ctx, http.MethodGet, path, nil, target)
}

// Post dispatches a POST request with a JSON body and decodes the
// response into target.
func (c *Client) Post(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, body, target)
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "vidgate-cli/1.0")
	if c.tokens != nil {
		if token, ok := c.tokens.Get(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return normalizeTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalizeTransportError(err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	if target != nil && len(data) > 0 {
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

// APIError is a failure reported by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorMessage extracts the server's error field, falling back to a
// generic message carrying the status code.
func errorMessage(body []byte, status int) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// normalizeTransportError strips wrapper noise from client errors so
// users see the underlying cause.
func normalizeTransportError(err error) error {
	if uerr, ok := unwrapURLError(err); ok {
		return uerr
	}
	return err
}

func unwrapURLError(err error) (error, bool) {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return inner, true
		}
	}
	return nil, false
}
