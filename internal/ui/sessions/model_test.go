// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sessions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/model"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:1")
	store := auth.NewStore(client, auth.NewMemoryStorage())
	store.Restore()
	return New(client, store, styles.NewTheme(), "alice")
}

// collectMsgs runs a command tree and returns every message it produces,
// flattening batches. Only used on commands known not to hit the network.
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
// LOAD TESTS
// =============================================================================

func TestSessions_Loaded(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.Loading())

	m, cmd := m.Update(LoadedMsg{ID: m.id, Sessions: []model.Session{
		{ID: "s1", Name: "Trip planning"},
		{ID: "s2", Name: "New Chat"},
	}})

	assert.False(t, m.Loading())
	assert.Nil(t, cmd)
	require.Len(t, m.Sessions(), 2)
	assert.Equal(t, "s1", m.Sessions()[0].ID)
	assert.Len(t, m.list.Items(), 2)
}

func TestSessions_LoadedEmpty(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id})

	assert.False(t, m.Loading())
	assert.NotNil(t, m.Sessions())
	assert.Empty(t, m.Sessions())
}

func TestSessions_LoadFailureKeepsList(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id, Sessions: []model.Session{{ID: "s1"}}})

	m.loading = true
	m, cmd := m.Update(LoadedMsg{ID: m.id, Err: &api.Error{Status: 500, Message: "boom"}})

	// The previously loaded list survives a failed refresh.
	assert.False(t, m.Loading())
	assert.Equal(t, "boom", m.Err())
	require.Len(t, m.Sessions(), 1)

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(components.ShowToastMsg)
	require.True(t, ok)
	assert.Equal(t, components.ToastError, toast.Kind)
}

func TestSessions_StaleLoadDropped(t *testing.T) {
	m := newTestModel(t)
	m, cmd := m.Update(LoadedMsg{ID: "someone-else", Sessions: []model.Session{{ID: "s1"}}})

	assert.True(t, m.Loading())
	assert.Nil(t, cmd)
	assert.Empty(t, m.Sessions())
}

// =============================================================================
// CREATE TESTS
// =============================================================================

func TestSessions_CreatedAppendsAndNavigates(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id, Sessions: []model.Session{{ID: "s1", Name: "Trip planning"}}})

	m.creating = true
	m, cmd := m.Update(CreatedMsg{ID: m.id, SessionID: "s2"})

	assert.False(t, m.Creating())
	require.Len(t, m.Sessions(), 2)
	created := m.Sessions()[1]
	assert.Equal(t, "s2", created.ID)
	assert.Equal(t, model.DefaultSessionName, created.Name)

	var sawToast bool
	var sawNav bool
	for _, msg := range collectMsgs(cmd) {
		switch msg := msg.(type) {
		case components.ShowToastMsg:
			sawToast = true
			assert.Equal(t, components.ToastSuccess, msg.Kind)
		case nav.GoMsg:
			sawNav = true
			assert.Equal(t, nav.RouteChat, msg.Route)
			assert.Equal(t, "/chat/s2", msg.Path())
		}
	}
	assert.True(t, sawToast)
	assert.True(t, sawNav)
}

func TestSessions_CreateFailure(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id})

	m.creating = true
	m, cmd := m.Update(CreatedMsg{ID: m.id, Err: &api.Error{Status: 503, Message: "overloaded"}})

	// Nothing was inserted optimistically, so nothing is rolled back.
	assert.False(t, m.Creating())
	assert.Empty(t, m.Sessions())
	assert.Equal(t, "overloaded", m.Err())
	assert.NotNil(t, cmd)
}

func TestSessions_StaleCreateDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id})

	m, cmd := m.Update(CreatedMsg{ID: "someone-else", SessionID: "s9"})

	assert.Empty(t, m.Sessions())
	assert.Nil(t, cmd)
}

// =============================================================================
// KEY TESTS
// =============================================================================

func TestSessions_EnterOpensSelected(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id, Sessions: []model.Session{{ID: "s1", Name: "Trip planning"}}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	go1, ok := msgs[0].(nav.GoMsg)
	require.True(t, ok)
	assert.Equal(t, nav.RouteChat, go1.Route)
	assert.Equal(t, "s1", go1.SessionID)
}

func TestSessions_NewChatStartsCreate(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.Update(LoadedMsg{ID: m.id})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, m.Creating())
	assert.NotNil(t, cmd)
}

func TestSessions_CtrlLLogsOut(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.False(t, m.store.IsAuthenticated())

	var sawNav bool
	for _, msg := range collectMsgs(cmd) {
		if go1, ok := msg.(nav.GoMsg); ok {
			sawNav = true
			assert.Equal(t, nav.RouteLogin, go1.Route)
		}
	}
	assert.True(t, sawNav)
}
