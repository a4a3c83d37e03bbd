package sdk

import (
	"errors"
	"sync"
)

// ErrIncompleteCredentials is returned by Save when the credentials are
// missing a username or token.
var ErrIncompleteCredentials = errors.New("incomplete credentials")

// CredentialStore persists the authenticated principal between runs. It is
// the single source of truth for "is the user logged in": Login writes it,
// Logout and the request pipeline's 401 handling clear it, everything else
// only reads.
//
// Load returns (nil, nil) when no usable credentials are stored. A malformed
// persisted value is treated as absent rather than surfaced as an error, so a
// corrupted store never wedges the client. Save always writes a complete
// principal; there is no partial update.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(*Credentials) error
	Clear() error
}

// MemoryStore is an in-process CredentialStore for tests and for callers that
// do not want credentials on disk. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	creds *Credentials
}

// Load returns a copy of the stored credentials, or (nil, nil) when absent.
func (s *MemoryStore) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.creds.Valid() {
		return nil, nil
	}
	creds := *s.creds
	return &creds, nil
}

// Save stores a copy of creds, overwriting any prior value.
func (s *MemoryStore) Save(creds *Credentials) error {
	if !creds.Valid() {
		return ErrIncompleteCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *creds
	s.creds = &stored
	return nil
}

// Clear removes the stored credentials. Clearing an empty store is a no-op.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}
