// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"sync"

	"github.com/jeranaias/aichat-tui/internal/api"
)

// Fallback messages for auth failures that carry no server detail.
const (
	loginFallback  = "Invalid username or password"
	signupFallback = "Signup failed. Please try again."
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the current authenticated Identity. Exactly one identity, or
// none, is active at any time; IsAuthenticated is true exactly when one is.
//
// The busy flag is asserted while a login/signup is in flight and during
// the startup restore, so dependent views can show a busy state. It is
// cleared on every exit path.
type Store struct {
	mu sync.Mutex

	client  *api.Client
	storage Storage

	identity    string
	hasIdentity bool
	busy        bool
	restored    bool
}

// NewStore creates a Session Store over the given API client and storage.
// The store starts busy until Restore has run.
func NewStore(client *api.Client, storage Storage) *Store {
	return &Store{
		client:  client,
		storage: storage,
		busy:    true,
	}
}

// =============================================================================
// STATE
// =============================================================================

// Identity returns the active identity, or ok=false when logged out.
func (s *Store) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.hasIdentity
}

// IsAuthenticated reports whether an identity is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasIdentity
}

// Initializing reports whether the store is busy: restoring at startup or
// waiting on an in-flight login/signup.
func (s *Store) Initializing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// =============================================================================
// STARTUP
// =============================================================================

// Restore reads a previously persisted identity from durable storage. A
// present value becomes the active identity without any network call; the
// cached value is trusted as-is. Clears the busy flag once the check is
// done. Calling Restore more than once is a no-op.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return
	}
	s.restored = true
	s.busy = false

	if username, ok := s.storage.Get(StorageKey); ok && username != "" {
		s.identity = username
		s.hasIdentity = true
	}
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Login verifies credentials with the service. On success the username is
// persisted and becomes the active identity; on failure the prior identity
// is left untouched and the returned error carries a displayable message.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.setBusy(true)
	defer s.setBusy(false)

	if err := s.client.Login(ctx, username, password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Persist first so a reload lands in the same state we are about to
	// expose in memory.
	s.storage.Set(StorageKey, username)
	s.identity = username
	s.hasIdentity = true
	return nil
}

// Signup registers a new account. It never establishes an identity; the
// user must log in afterwards.
func (s *Store) Signup(ctx context.Context, username, password string) error {
	s.setBusy(true)
	defer s.setBusy(false)
	return s.client.Signup(ctx, username, password)
}

// Logout clears both the persisted and in-memory identity. Idempotent,
// synchronous, never fails.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Remove(StorageKey)
	s.identity = ""
	s.hasIdentity = false
}

func (s *Store) setBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
}

// =============================================================================
// ERROR PRESENTATION
// =============================================================================

// LoginErrorMessage converts a login failure to display text.
func LoginErrorMessage(err error) string {
	return api.UserMessage(err, loginFallback)
}

// SignupErrorMessage converts a signup failure to display text.
func SignupErrorMessage(err error) string {
	return api.UserMessage(err, signupFallback)
}
