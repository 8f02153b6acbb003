// Package api is the typed gateway to the attendance backend. All views talk
// to the backend exclusively through a Client; the bearer credential is
// attached uniformly by a single transport-level interceptor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenSource supplies the bearer credential for outgoing requests. An empty
// token means "send the request unauthenticated".
type TokenSource interface {
	Token() string
}

// Client is an HTTP client for the attendance backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the backend at baseURL. Every request is routed
// through a bearer interceptor backed by ts.
func New(baseURL string, ts TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Transport: &bearerTransport{source: ts, base: http.DefaultTransport},
		},
	}
}

// bearerTransport attaches the Authorization header to every request. This is
// the single request interceptor; no endpoint method sets the header itself.
type bearerTransport struct {
	source TokenSource
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source != nil {
		if token := t.source.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// do issues one request and decodes the response into out when non-nil. A
// body of "null" or an empty body leaves out untouched, which callers use to
// detect "no record" responses.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
