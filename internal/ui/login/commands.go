// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aichat-tui/internal/auth"
)

// LoginCmd attempts a login through the session store.
func LoginCmd(store *auth.Store, instanceID, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := store.Login(context.Background(), username, password)
		return LoginResultMsg{ID: instanceID, Err: err}
	}
}

// SignupCmd registers a new account. It never activates the identity; the
// user logs in afterwards.
func SignupCmd(store *auth.Store, instanceID, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := store.Signup(context.Background(), username, password)
		return SignupResultMsg{ID: instanceID, Err: err}
	}
}
