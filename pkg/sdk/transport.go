package sdk

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// authTransport is the request pipeline every authenticated call goes
// through. On the way out it attaches the bearer token from the credential
// store; on the way back it watches for authorization failures and tears the
// session down.
type authTransport struct {
	base      http.RoundTripper
	store     CredentialStore
	onExpired func()

	mu sync.Mutex
	// tornDown remembers the last token whose session was torn down, so
	// concurrent 401s for the same token, or failing requests issued by the
	// expiry handler itself, run the teardown exactly once. A re-login with
	// a fresh token re-arms it.
	tornDown string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header.Get("X-Request-Id") == "" {
		out.Header.Set("X-Request-Id", uuid.NewString())
	}

	var token string
	if creds, err := t.store.Load(); err == nil && creds.Valid() {
		token = creds.Token
		out.Header.Set("Authorization", "Bearer "+token)
	}
	// With no credentials the request goes out unauthenticated and the
	// backend rejects it; that rejection is the caller's to handle.

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		// No response at all proves nothing about the session.
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && out.URL.Path != signinPath {
		t.expire(token)
	}
	return resp, nil
}

// expire clears the session for token unless it already has been.
func (t *authTransport) expire(token string) {
	t.mu.Lock()
	if t.tornDown == token {
		t.mu.Unlock()
		return
	}
	t.tornDown = token
	t.mu.Unlock()

	_ = t.store.Clear()
	if t.onExpired != nil {
		t.onExpired()
	}
}
