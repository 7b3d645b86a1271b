// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared across packages.
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data through a temp file in the target directory
// and renames it into place, so the file on disk is never partially
// written. The parent directory is created with dirPerm if missing.
func AtomicWriteFile(path string, data []byte, filePerm, dirPerm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	// The temp file must live in the same directory for the rename to be
	// atomic.
	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp)
		if werr != nil {
			return fmt.Errorf("write temp file: %w", werr)
		}
		return fmt.Errorf("close temp file: %w", cerr)
	}

	// CreateTemp uses 0600; apply the caller's mode before exposing the
	// file under its real name.
	if err := os.Chmod(tmp, filePerm); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("set file permissions: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
