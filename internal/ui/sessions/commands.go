// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sessions

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aichat-tui/internal/api"
)

// LoadCmd creates a command that fetches the session list for a user.
func LoadCmd(client *api.Client, instanceID, username string) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListSessions(context.Background(), username)
		return LoadedMsg{
			ID:       instanceID,
			Sessions: list,
			Err:      err,
		}
	}
}

// CreateCmd creates a command that asks the server for a new session.
func CreateCmd(client *api.Client, instanceID, username string) tea.Cmd {
	return func() tea.Msg {
		sessionID, err := client.CreateSession(context.Background(), username)
		return CreatedMsg{
			ID:        instanceID,
			SessionID: sessionID,
			Err:       err,
		}
	}
}
