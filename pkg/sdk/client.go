// Package sdk is the typed Go client for the SIAGS hospital administration
// API: authentication and session persistence, the bearer-token request
// pipeline, access decisions, and CRUD wrappers for the administrative
// resources (patients, admissions, departments, consultations, users,
// reports, audit log).
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client provides a high-level interface to the SIAGS API. Every resource
// wrapper issues its requests through it, so the bearer header and the 401
// teardown behavior are configured in exactly one place.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOptions configures client construction.
type ClientOptions struct {
	// HTTPClient overrides the transport-level client. Timeout policy lives
	// here; the sdk imposes none of its own.
	HTTPClient *http.Client
	// Store supplies the bearer token per request. Without a store the client
	// sends unauthenticated requests.
	Store CredentialStore
	// SessionExpired runs once after a 401 clears the store.
	SessionExpired func()
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithCredentialStore routes every request through the bearer-attaching
// pipeline backed by store.
func WithCredentialStore(store CredentialStore) ClientOption {
	return func(opts *ClientOptions) {
		opts.Store = store
	}
}

// WithSessionExpiredHandler registers the navigate-to-login action invoked
// after a 401 tears the session down. The surrounding application owns what
// "go to login" means; for a CLI it is a message and a non-zero exit.
func WithSessionExpiredHandler(fn func()) ClientOption {
	return func(opts *ClientOptions) {
		opts.SessionExpired = fn
	}
}

// NewClient creates a SIAGS client for the API server at baseURL. An
// http.Client is created automatically when one is not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.Store != nil {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		// Copy so the caller's client keeps its own transport.
		wrapped := *httpClient
		wrapped.Transport = &authTransport{
			base:      base,
			store:     opts.Store,
			onExpired: opts.SessionExpired,
		}
		httpClient = &wrapped
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The pipeline already cleared the session; the call still fails so
		// the caller's own error path runs.
		return fmt.Errorf("%w: %s %s", ErrSessionExpired, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiErrorFrom(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiErrorFrom reads a non-2xx response into an APIError, preferring the
// backend's JSON message field and falling back to the raw body.
func apiErrorFrom(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
