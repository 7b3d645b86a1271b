// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// TypingIndicatorID is the reserved message ID of the transient placeholder
// shown while an assistant reply is pending. At most one message with this
// ID exists in a timeline at any instant, and it never outlives the send
// that created it.
const TypingIndicatorID = "typing-indicator"

// TypingIndicatorContent is the fixed display content of the placeholder.
const TypingIndicatorContent = "AI is thinking..."

// Message represents a single message in a conversation timeline.
//
// Placeholder tags the typing indicator explicitly, so placeholder checks
// do not depend on an ID string comparison.
type Message struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Placeholder bool      `json:"-"`
}

// NewUserMessage creates a user message with a generated ID.
func NewUserMessage(content string) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message with a generated ID.
func NewAssistantMessage(content string) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewTypingIndicator creates the transient placeholder that occupies the
// assistant's ordinal slot while a reply is in flight.
func NewTypingIndicator() Message {
	return Message{
		ID:          TypingIndicatorID,
		Role:        RoleAssistant,
		Content:     TypingIndicatorContent,
		Timestamp:   time.Now(),
		Placeholder: true,
	}
}

// IsPlaceholder reports whether the message is the typing indicator rather
// than an authoritative message.
func (m Message) IsPlaceholder() bool {
	return m.Placeholder
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	return string(runes[:maxLen-3]) + "..."
}

// generateID creates a unique message ID.
func generateID() string {
	return "msg_" + uuid.NewString()
}
