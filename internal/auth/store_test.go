// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aichat-tui/internal/api"
)

// newTestServer serves the login/signup endpoints accepting exactly one
// credential pair.
func newTestServer(t *testing.T, username, password string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			if req.Username == username && req.Password == password {
				w.Write([]byte(`{"message": "Login Successful"}`))
			} else {
				w.Write([]byte(`{"message": "Invalid Credentials"}`))
			}
		case "/auth/signup":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message": "User created successfully"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// =============================================================================
// LOGIN / LOGOUT TESTS
// =============================================================================

func TestStore_LoginActivatesAndPersists(t *testing.T) {
	server := newTestServer(t, "alice", "pw")
	storage := NewMemoryStorage()
	store := NewStore(api.NewClient(server.URL), storage)
	store.Restore()

	require.False(t, store.IsAuthenticated())

	err := store.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	username, ok := store.Identity()
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	persisted, ok := storage.Get(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "alice", persisted)
}

func TestStore_LoginFailureLeavesStateUntouched(t *testing.T) {
	server := newTestServer(t, "alice", "pw")
	storage := NewMemoryStorage()
	store := NewStore(api.NewClient(server.URL), storage)
	store.Restore()

	err := store.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsAuthFailed(err))

	assert.False(t, store.IsAuthenticated())
	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)

	assert.Equal(t, "invalid username or password", LoginErrorMessage(err))
}

func TestStore_LogoutIsIdempotent(t *testing.T) {
	server := newTestServer(t, "alice", "pw")
	storage := NewMemoryStorage()
	store := NewStore(api.NewClient(server.URL), storage)
	store.Restore()

	require.NoError(t, store.Login(context.Background(), "alice", "pw"))
	require.True(t, store.IsAuthenticated())

	store.Logout()
	assert.False(t, store.IsAuthenticated())
	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)

	// A second logout is a no-op, not a failure.
	store.Logout()
	assert.False(t, store.IsAuthenticated())
}

// =============================================================================
// RESTORE TESTS
// =============================================================================

// A persisted identity survives a process restart: a fresh store over the
// same storage restores it without any network call.
func TestStore_RestorePersistedIdentity(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(StorageKey, "alice"))

	// No server: restore must not touch the network.
	store := NewStore(api.NewClient("http://127.0.0.1:1"), storage)
	assert.True(t, store.Initializing())

	store.Restore()
	assert.False(t, store.Initializing())

	username, ok := store.Identity()
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestStore_RestoreWithEmptyStorage(t *testing.T) {
	store := NewStore(api.NewClient("http://127.0.0.1:1"), NewMemoryStorage())
	store.Restore()
	assert.False(t, store.IsAuthenticated())
	assert.False(t, store.Initializing())
}

func TestStore_RestoreRunsOnce(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(api.NewClient("http://127.0.0.1:1"), storage)
	store.Restore()

	// Values persisted after the first restore are not picked up.
	require.NoError(t, storage.Set(StorageKey, "late"))
	store.Restore()
	assert.False(t, store.IsAuthenticated())
}

// =============================================================================
// SIGNUP TESTS
// =============================================================================

func TestStore_SignupDoesNotActivate(t *testing.T) {
	server := newTestServer(t, "alice", "pw")
	storage := NewMemoryStorage()
	store := NewStore(api.NewClient(server.URL), storage)
	store.Restore()

	require.NoError(t, store.Signup(context.Background(), "bob", "pw2"))
	assert.False(t, store.IsAuthenticated())
	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)
}

// =============================================================================
// FILE STORAGE TESTS
// =============================================================================

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := NewFileStorageAt(path)

	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)

	require.NoError(t, storage.Set(StorageKey, "alice"))

	// A fresh instance over the same path sees the value.
	again := NewFileStorageAt(path)
	v, ok := again.Get(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	require.NoError(t, again.Remove(StorageKey))
	_, ok = storage.Get(StorageKey)
	assert.False(t, ok)
}

func TestFileStorage_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := NewFileStorageAt(path)
	require.NoError(t, storage.Set("k", "v"))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, ok := storage.Get("k")
	assert.False(t, ok)

	// Still writable after corruption.
	require.NoError(t, storage.Set("k", "v2"))
	v, ok := storage.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}
