package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	signinPath = "/api/v1/auth/signin"
	signupPath = "/api/v1/auth/signup"
)

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupInput is the registration payload for the signup endpoint.
type SignupInput struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// Login exchanges a username and password for credentials at the signin
// endpoint and saves them to store before returning, so a caller that awaits
// Login and then reads the store observes the new principal.
//
// The exchange goes over a plain HTTP client rather than an authenticated
// Client: no bearer token exists yet, and a 401 from signin must never
// trigger the shared session teardown. On any failure the store is left
// untouched.
func Login(ctx context.Context, baseURL, username, password string, store CredentialStore) (*Credentials, error) {
	body, err := json.Marshal(signinRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode signin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(baseURL, "/")+signinPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build signin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: NetworkUnavailable, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &AuthError{Reason: InvalidCredentials, Err: fmt.Errorf("signin rejected with status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &AuthError{Reason: MalformedResponse, Err: fmt.Errorf("unexpected signin status %d", resp.StatusCode)}
	}

	var creds Credentials
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return nil, &AuthError{Reason: MalformedResponse, Err: err}
	}
	if !creds.Valid() {
		// Never store a partial principal.
		return nil, &AuthError{Reason: MalformedResponse, Err: errors.New("signin response missing token")}
	}

	if store != nil {
		if err := store.Save(&creds); err != nil {
			return nil, fmt.Errorf("failed to save credentials: %w", err)
		}
	}
	return &creds, nil
}

// Signup registers a new account at the unauthenticated signup endpoint.
// Rejections carry the backend's message as an *APIError.
func Signup(ctx context.Context, baseURL string, input SignupInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode signup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(baseURL, "/")+signupPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build signup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &AuthError{Reason: NetworkUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Signup rejections are business validation (username taken, weak
		// password); pass the backend's message through verbatim.
		return apiErrorFrom(resp)
	}
	return nil
}

// Logout clears the persisted session. It is idempotent and performs no
// network call.
func Logout(store CredentialStore) error {
	if store == nil {
		return nil
	}
	return store.Clear()
}

// AvailableRoles returns the role names an administrator may assign.
func (c *Client) AvailableRoles(ctx context.Context) ([]string, error) {
	var roles []string
	if err := c.get(ctx, "/api/v1/auth/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
