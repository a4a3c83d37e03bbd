package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/siags/siagsctl/pkg/sdk"
)

const credentialsFile = "credentials.json"

// FileStore implements sdk.CredentialStore using a JSON file under the
// user's home directory. This is the CLI's credential persistence
// implementation.
type FileStore struct {
	path string
}

// Ensure FileStore implements sdk.CredentialStore at compile time.
var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.siags.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreIn(filepath.Join(home, ".siags"))
}

// NewFileStoreIn creates a FileStore rooted at dir, creating dir if needed.
func NewFileStoreIn(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

// Load reads the persisted credentials. A missing, unreadable by format, or
// incomplete file counts as "not logged in" and returns (nil, nil); only I/O
// failures surface as errors.
func (s *FileStore) Load() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var creds sdk.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, nil
	}
	if !creds.Valid() {
		return nil, nil
	}
	return &creds, nil
}

// Save writes the credentials atomically (temp file + rename) with owner-only
// permissions.
func (s *FileStore) Save(creds *sdk.Credentials) error {
	if !creds.Valid() {
		return sdk.ErrIncompleteCredentials
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}

// Clear deletes the credentials file. Clearing an absent file is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
