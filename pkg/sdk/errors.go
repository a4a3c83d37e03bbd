package sdk

import (
	"errors"
	"fmt"
)

// AuthFailure classifies why a credential exchange failed.
type AuthFailure int

const (
	// InvalidCredentials means the backend rejected the username/password.
	InvalidCredentials AuthFailure = iota + 1
	// NetworkUnavailable means no HTTP response was received at all.
	NetworkUnavailable
	// MalformedResponse means the backend answered but the payload was
	// missing required fields.
	MalformedResponse
)

func (f AuthFailure) String() string {
	switch f {
	case InvalidCredentials:
		return "invalid credentials"
	case NetworkUnavailable:
		return "network unavailable"
	case MalformedResponse:
		return "malformed response"
	default:
		return fmt.Sprintf("auth failure %d", int(f))
	}
}

// AuthError is returned by Login and Signup. Callers map Reason to a
// user-facing message; the sdk does not format one.
type AuthError struct {
	Reason AuthFailure
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed (%s)", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError carries a non-2xx backend response. Message is the backend's own
// message, preserved verbatim so business-validation errors (duplicate
// record, etc.) reach the user unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// ErrSessionExpired marks a 401 on an authenticated call. By the time a
// caller sees it, the pipeline has already cleared the credential store and
// fired the session-expired handler.
var ErrSessionExpired = errors.New("session expired")
