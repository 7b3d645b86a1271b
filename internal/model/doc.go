// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for sessions and messages.
//
// This package defines the core domain types shared by the views: the
// chat Session as listed in the directory, the Message as rendered in a
// conversation timeline, and the transient typing-indicator placeholder
// that stands in for an assistant reply while one is pending.
//
// # Key Types
//
//   - Session: One chat session as reported by the server (ID + name)
//   - Message: Single message with role, content, and timestamp
//   - Role: Message role enumeration (user, assistant)
//
// The server is authoritative for sessions and message history; these
// types only describe the client's in-memory view of them.
package model
