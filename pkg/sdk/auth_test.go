package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SuccessSavesCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/signin", r.URL.Path)
		// Signin is the one call that must never carry a bearer header.
		require.Empty(t, r.Header.Get("Authorization"))

		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "admin", payload.Username)
		require.Equal(t, "correct", payload.Password)

		json.NewEncoder(w).Encode(map[string]any{
			"token":    "abc",
			"username": "admin",
			"roles":    []string{"ROLE_ADMIN"},
		})
	}))
	defer server.Close()

	store := &MemoryStore{}
	creds, err := Login(context.Background(), server.URL, "admin", "correct", store)
	require.NoError(t, err)

	assert.Equal(t, "admin", creds.Username)
	assert.Equal(t, "abc", creds.Token)
	assert.Equal(t, []string{"ROLE_ADMIN"}, creds.Roles)

	// The store is updated before Login returns.
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, stored)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	store := &MemoryStore{}
	_, err := Login(context.Background(), server.URL, "admin", "wrong", store)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, InvalidCredentials, authErr.Reason)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored, "a failed login must not touch the store")
}

func TestLogin_NetworkUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing is listening anymore

	store := &MemoryStore{}
	_, err := Login(context.Background(), server.URL, "admin", "correct", store)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, NetworkUnavailable, authErr.Reason)
}

func TestLogin_MalformedResponse(t *testing.T) {
	t.Run("missing token field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"username": "admin", "roles": []string{"ROLE_ADMIN"}})
		}))
		defer server.Close()

		store := &MemoryStore{}
		_, err := Login(context.Background(), server.URL, "admin", "correct", store)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, MalformedResponse, authErr.Reason)

		stored, loadErr := store.Load()
		require.NoError(t, loadErr)
		assert.Nil(t, stored, "a partial principal must never be stored")
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		_, err := Login(context.Background(), server.URL, "admin", "correct", &MemoryStore{})

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, MalformedResponse, authErr.Reason)
	})
}

func TestLogin_FailureLeavesExistingSessionIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	store := &MemoryStore{}
	existing := &Credentials{Username: "admin", Token: "old"}
	require.NoError(t, store.Save(existing))

	_, err := Login(context.Background(), server.URL, "admin", "wrong", store)
	require.Error(t, err)

	stored, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, existing, stored)
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/auth/signup", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully!"})
		}))
		defer server.Close()

		err := Signup(context.Background(), server.URL, SignupInput{
			Username: "reception1",
			Email:    "reception1@hospital.test",
			Password: "s3cret",
			Roles:    []string{"ROLE_RECEPTIONIST"},
		})
		assert.NoError(t, err)
	})

	t.Run("backend message preserved verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Error: Username is already taken!"})
		}))
		defer server.Close()

		err := Signup(context.Background(), server.URL, SignupInput{Username: "dup", Email: "d@x", Password: "p"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Error: Username is already taken!", apiErr.Message)
	})
}

func TestLogout(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save(&Credentials{Username: "admin", Token: "abc"}))

	require.NoError(t, Logout(store))
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Idempotent, and nil stores are tolerated.
	require.NoError(t, Logout(store))
	require.NoError(t, Logout(nil))
}
