// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aichat-tui/internal/api"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// LoadHistoryCmd creates a command that fetches a session's history.
func LoadHistoryCmd(client *api.Client, instanceID, sessionID string) tea.Cmd {
	return func() tea.Msg {
		entries, err := client.GetHistory(context.Background(), sessionID)
		return HistoryLoadedMsg{
			ID:        instanceID,
			SessionID: sessionID,
			Entries:   entries,
			Err:       err,
		}
	}
}

// SendCmd creates a command that delivers one user message and returns
// the assistant's reply.
func SendCmd(client *api.Client, instanceID, sessionID, username, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendMessage(context.Background(), sessionID, username, text)
		return ReplyMsg{
			ID:        instanceID,
			SessionID: sessionID,
			Reply:     reply,
			Err:       err,
		}
	}
}
