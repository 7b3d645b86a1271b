// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// DefaultSessionName is used when the server reports a session without a
// display label.
const DefaultSessionName = "New Chat"

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session is one chat session as listed by the server. The server assigns
// IDs; the client never invents one.
type Session struct {
	ID   string `json:"session_id"`
	Name string `json:"session_name"`
}

// DisplayName returns the session's label, falling back to the default
// when the server omitted one.
func (s Session) DisplayName() string {
	if s.Name == "" {
		return DefaultSessionName
	}
	return s.Name
}

// =============================================================================
// HISTORY MAPPING
// =============================================================================

// HistoryEntry is a restored message as returned by the server, which
// supplies neither IDs nor timestamps for historical messages.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessagesFromHistory maps restored history entries, in server order, to
// timeline messages. Each gets a synthesized ID of the form
// "<sessionID>-<index>" and a timestamp of the moment of this load, since
// the server does not preserve original send times.
func MessagesFromHistory(sessionID string, entries []HistoryEntry) []Message {
	msgs := make([]Message, 0, len(entries))
	for i, e := range entries {
		m := NewAssistantMessage(e.Content)
		if Role(e.Role) == RoleUser {
			m = NewUserMessage(e.Content)
		}
		m.ID = fmt.Sprintf("%s-%d", sessionID, i)
		msgs = append(msgs, m)
	}
	return msgs
}

// RemoveMessage returns the timeline with every message bearing the given
// ID filtered out, preserving order.
func RemoveMessage(msgs []Message, id string) []Message {
	out := msgs[:0:0]
	for _, m := range msgs {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// CountPlaceholders returns the number of typing indicators in the timeline.
func CountPlaceholders(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if m.IsPlaceholder() {
			n++
		}
	}
	return n
}
