// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sessions provides the session directory view for the TUI.
//
// The directory lists every session the server knows for the current
// identity, creates new sessions, and emits navigation intents into a
// chosen conversation. The server assigns session IDs; the local list is
// a cache, overwritten on load and appended to on creation.
package sessions

import "github.com/jeranaias/aichat-tui/internal/model"

// LoadedMsg delivers the result of a session list fetch.
type LoadedMsg struct {
	ID       string // issuing model instance
	Sessions []model.Session
	Err      error
}

// CreatedMsg delivers the result of a session creation.
type CreatedMsg struct {
	ID        string // issuing model instance
	SessionID string // server-assigned
	Err       error
}
