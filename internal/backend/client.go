// Package backend is the REST client for the marketplace backend that owns
// all persistent business data: identity, profiles, the job catalogue,
// orders and payment execution.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a client with a shared HTTP client. baseURL has no
// trailing slash.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer from the backend, carrying whatever message
// the response body offered.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: unexpected status %d", e.Status)
}

// errorBody covers the two error envelopes the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// doJSON performs one JSON round-trip. A non-empty token rides as a bearer
// header; a non-nil out receives the decoded 2xx body. Calls are never
// retried: failures surface once to the caller.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.asAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) asAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil {
			if body.Message != "" {
				apiErr.Message = body.Message
			} else {
				apiErr.Message = body.Err
			}
		}
	}
	return apiErr
}
