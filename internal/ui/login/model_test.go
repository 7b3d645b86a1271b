// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

func newTestModel(t *testing.T, mode Mode) Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:1")
	store := auth.NewStore(client, auth.NewMemoryStorage())
	store.Restore()
	return New(store, styles.NewTheme(), mode)
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

// Local validation fires before any network call.
func TestLogin_EmptyUsername(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Username is required", m.Err())
	assert.False(t, m.Submitting())
	assert.Nil(t, cmd)
}

func TestLogin_EmptyPassword(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.username.SetValue("alice")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Password is required", m.Err())
	assert.False(t, m.Submitting())
	assert.Nil(t, cmd)
}

func TestLogin_SubmitStartsRequest(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.username.SetValue("alice")
	m.password.SetValue("pw")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitting())
	assert.Empty(t, m.Err())
	assert.NotNil(t, cmd)
}

// =============================================================================
// RESULT TESTS
// =============================================================================

func TestLogin_SuccessNavigatesToSessions(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.submitting = true

	m, cmd := m.Update(LoginResultMsg{ID: m.id})

	assert.False(t, m.Submitting())

	var sawToast, sawNav bool
	for _, msg := range collectMsgs(cmd) {
		switch msg := msg.(type) {
		case components.ShowToastMsg:
			sawToast = true
			assert.Equal(t, components.ToastSuccess, msg.Kind)
		case nav.GoMsg:
			sawNav = true
			assert.Equal(t, nav.RouteSessions, msg.Route)
		}
	}
	assert.True(t, sawToast)
	assert.True(t, sawNav)
}

// A rejected login surfaces both the inline error and an error toast.
func TestLogin_FailureShowsMessageAndToast(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.submitting = true

	m, cmd := m.Update(LoginResultMsg{ID: m.id, Err: api.ErrInvalidCredentials})

	assert.False(t, m.Submitting())
	assert.Equal(t, "invalid username or password", m.Err())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(components.ShowToastMsg)
	require.True(t, ok)
	assert.Equal(t, components.ToastError, toast.Kind)
	assert.Equal(t, "invalid username or password", toast.Message)
}

func TestLogin_StaleResultDropped(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.submitting = true

	m, cmd := m.Update(LoginResultMsg{ID: "someone-else"})

	assert.True(t, m.Submitting())
	assert.Nil(t, cmd)
}

// Successful signup returns to the login form instead of activating the
// account.
func TestSignup_SuccessReturnsToLogin(t *testing.T) {
	m := newTestModel(t, ModeSignup)
	m.username.SetValue("bob")
	m.submitting = true

	m, cmd := m.Update(SignupResultMsg{ID: m.id})

	assert.Equal(t, ModeLogin, m.CurrentMode())
	assert.Equal(t, "bob", m.username.Value())
	assert.Empty(t, m.password.Value())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(components.ShowToastMsg)
	require.True(t, ok)
	assert.Equal(t, components.ToastSuccess, toast.Kind)
}

func TestSignup_FailureShowsDetailAndToast(t *testing.T) {
	m := newTestModel(t, ModeSignup)
	m.submitting = true

	m, cmd := m.Update(SignupResultMsg{ID: m.id, Err: &api.Error{Status: 400, Message: "Username already exists"}})

	assert.Equal(t, ModeSignup, m.CurrentMode())
	assert.Equal(t, "Username already exists", m.Err())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(components.ShowToastMsg)
	require.True(t, ok)
	assert.Equal(t, components.ToastError, toast.Kind)
	assert.Equal(t, "Username already exists", toast.Message)
}

// =============================================================================
// MODE SWITCH TESTS
// =============================================================================

func TestLogin_CtrlNTogglesMode(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.password.SetValue("secret")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, ModeSignup, m.CurrentMode())
	assert.Empty(t, m.password.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, ModeLogin, m.CurrentMode())
}

func TestLogin_KeysIgnoredWhileSubmitting(t *testing.T) {
	m := newTestModel(t, ModeLogin)
	m.username.SetValue("alice")
	m.password.SetValue("pw")
	m.submitting = true

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitting())
	assert.Nil(t, cmd)
}
