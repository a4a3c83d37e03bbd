package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/siags/siagsctl/pkg/sdk"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStoreIn(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreIn: %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	creds := &sdk.Credentials{
		Username: "dupont",
		Email:    "dupont@hopital.fr",
		Roles:    []string{"ROLE_MEDECIN"},
		Token:    "jwt-token",
	}
	if err := store.Save(creds); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}
	if loaded.Username != "dupont" || loaded.Token != "jwt-token" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Roles) != 1 || loaded.Roles[0] != "ROLE_MEDECIN" {
		t.Errorf("roles mismatch: %v", loaded.Roles)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil credentials for missing file, got %+v", loaded)
	}
}

func TestFileStoreLoadMalformed(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected malformed file to load as absent, got %+v", loaded)
	}
}

func TestFileStoreLoadIncomplete(t *testing.T) {
	store := newTestStore(t)
	// Valid JSON but missing the token.
	if err := os.WriteFile(store.path, []byte(`{"username":"dupont"}`), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected incomplete file to load as absent, got %+v", loaded)
	}
}

func TestFileStoreSaveIncomplete(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(&sdk.Credentials{Username: "dupont"})
	if err != sdk.ErrIncompleteCredentials {
		t.Errorf("expected ErrIncompleteCredentials, got %v", err)
	}
	if _, statErr := os.Stat(store.path); !os.IsNotExist(statErr) {
		t.Error("incomplete save must not create the credentials file")
	}
}

func TestFileStoreClear(t *testing.T) {
	store := newTestStore(t)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on absent file: %v", err)
	}

	creds := &sdk.Credentials{Username: "dupont", Token: "jwt"}
	if err := store.Save(creds); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil after Clear, got %+v", loaded)
	}
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	dir := filepath.Join(t.TempDir(), "siags")
	store, err := NewFileStoreIn(dir)
	if err != nil {
		t.Fatalf("NewFileStoreIn: %v", err)
	}
	if err := store.Save(&sdk.Credentials{Username: "dupont", Token: "jwt"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dirInfo, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat dir: %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0700 {
		t.Errorf("dir mode = %o, want 0700", perm)
	}
	fileInfo, err := os.Stat(store.path)
	if err != nil {
		t.Fatalf("Stat file: %v", err)
	}
	if perm := fileInfo.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}
