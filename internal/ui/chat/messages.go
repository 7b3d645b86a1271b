// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the view. Every
// async result carries the instance ID of the model that issued the
// request; a model ignores results stamped with a foreign ID, which is
// how responses that outlive their view get dropped instead of applied.

package chat

import "github.com/jeranaias/aichat-tui/internal/model"

// HistoryLoadedMsg delivers the result of a history fetch.
type HistoryLoadedMsg struct {
	ID        string // issuing model instance
	SessionID string
	Entries   []model.HistoryEntry
	Err       error
}

// ReplyMsg delivers the outcome of one message send.
type ReplyMsg struct {
	ID        string // issuing model instance
	SessionID string
	Reply     string
	Err       error
}
