// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/aichat-tui/internal/util"
)

// StorageKey is the fixed key under which the active Identity is persisted.
const StorageKey = "ai_assistant_username"

// =============================================================================
// STORAGE INTERFACE
// =============================================================================

// Storage is the durable key-value store backing the Session Store. A
// missing key is reported as absent, never as an error; storage failures
// are treated the same way as absence.
type Storage interface {
	// Get returns the stored value for key, or ok=false when absent.
	Get(key string) (value string, ok bool)

	// Set stores value under key.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// =============================================================================
// FILE STORAGE
// =============================================================================

// FileStorage persists values as a JSON object in a single file,
// default ~/.aichat/credentials.json.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates file-backed storage under the user's home
// directory, creating the parent directory if needed.
func NewFileStorage() (*FileStorage, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(homeDir, ".aichat")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &FileStorage{path: filepath.Join(dir, "credentials.json")}, nil
}

// NewFileStorageAt creates file-backed storage at an explicit path.
func NewFileStorageAt(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Get implements Storage.
func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.read()
	v, ok := values[key]
	return v, ok
}

// Set implements Storage.
func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.read()
	values[key] = value
	return s.write(values)
}

// Remove implements Storage.
func (s *FileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.read()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.write(values)
}

// read loads the backing file. Unreadable or corrupt files are treated as
// empty storage.
func (s *FileStorage) read() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return map[string]string{}
	}
	return values
}

func (s *FileStorage) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	// Credentials file is user-only.
	return util.AtomicWriteFile(s.path, data, 0600, 0700)
}

// =============================================================================
// MEMORY STORAGE
// =============================================================================

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get implements Storage.
func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Storage.
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove implements Storage.
func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
