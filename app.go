// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/config"
	"github.com/jeranaias/aichat-tui/internal/ui/chat"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/facts"
	"github.com/jeranaias/aichat-tui/internal/ui/login"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/sessions"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

// restoredMsg signals that the persisted identity check has finished.
type restoredMsg struct{}

// =============================================================================
// APP MODEL
// =============================================================================

// appModel is the root Bubble Tea model. It owns the mounted view, routes
// navigation intents, guards protected routes behind authentication, and
// hosts the toast overlay.
type appModel struct {
	cfg    *config.Config
	theme  *styles.Theme
	client *api.Client
	store  *auth.Store
	toasts *components.ToastManager

	// Mounted view. route says which of the child models is live.
	route       nav.Route
	loginView   login.Model
	sessionList sessions.Model
	chatView    chat.Model
	factsView   facts.Model

	// restoring is true until the persisted identity has been checked.
	// No view is mounted before that resolves.
	restoring bool

	// ticking is true while the toast expiry loop is running.
	ticking bool

	width  int
	height int
}

func newAppModel(cfg *config.Config, client *api.Client, store *auth.Store) appModel {
	return appModel{
		cfg:       cfg,
		theme:     styles.NewTheme(),
		client:    client,
		store:     store,
		toasts:    components.NewToastManager(),
		restoring: true,
		width:     80,
		height:    24,
	}
}

// Init kicks off the identity restore.
func (m appModel) Init() tea.Cmd {
	return func() tea.Msg {
		m.store.Restore()
		return restoredMsg{}
	}
}

// Update handles messages and updates the model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the mounted view below.

	case restoredMsg:
		m.restoring = false
		if m.store.IsAuthenticated() {
			return m.navigate(nav.GoMsg{Route: nav.RouteSessions})
		}
		return m.navigate(nav.GoMsg{Route: nav.RouteLogin})

	case nav.GoMsg:
		return m.navigate(msg)

	case components.ShowToastMsg:
		m.toasts.Add(msg.Message, msg.Kind)
		if m.ticking {
			return m, nil
		}
		m.ticking = true
		return m, components.ToastTickCmd()

	case components.ToastTickMsg:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		m.ticking = false
		return m, nil
	}

	if m.restoring {
		return m, nil
	}
	return m.updateChild(msg)
}

// navigate mounts the view for an intent, enforcing the auth guard: a
// protected route with no active identity lands on the login form instead.
func (m appModel) navigate(msg nav.GoMsg) (tea.Model, tea.Cmd) {
	route := msg.Route
	if routeProtected(route) && !m.store.IsAuthenticated() {
		route = nav.RouteLogin
	}

	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	m.route = route

	switch route {
	case nav.RouteLogin, nav.RouteSignup:
		mode := login.ModeLogin
		if route == nav.RouteSignup {
			mode = login.ModeSignup
		}
		m.loginView = login.New(m.store, m.theme, mode)
		m.loginView, _ = m.loginView.Update(size)
		return m, m.loginView.Init()

	case nav.RouteSessions:
		username, _ := m.store.Identity()
		m.sessionList = sessions.New(m.client, m.store, m.theme, username)
		m.sessionList, _ = m.sessionList.Update(size)
		return m, m.sessionList.Init()

	case nav.RouteChat:
		username, _ := m.store.Identity()
		m.chatView = chat.New(m.client, m.store, m.theme, msg.SessionID, username, m.cfg.UI.Markdown)
		m.chatView, _ = m.chatView.Update(size)
		return m, m.chatView.Init()

	case nav.RouteFacts:
		username, _ := m.store.Identity()
		m.factsView = facts.New(m.client, m.theme, username)
		m.factsView, _ = m.factsView.Update(size)
		return m, m.factsView.Init()
	}

	return m, nil
}

// updateChild forwards a message to the mounted view. Results from a view
// that is no longer mounted still arrive here; each view discards messages
// stamped with a foreign instance ID, so forwarding to the current view is
// always safe.
func (m appModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.route {
	case nav.RouteLogin, nav.RouteSignup:
		m.loginView, cmd = m.loginView.Update(msg)
	case nav.RouteSessions:
		m.sessionList, cmd = m.sessionList.Update(msg)
	case nav.RouteChat:
		m.chatView, cmd = m.chatView.Update(msg)
	case nav.RouteFacts:
		m.factsView, cmd = m.factsView.Update(msg)
	}
	return m, cmd
}

// View renders the mounted view with the toast overlay on top.
func (m appModel) View() string {
	if m.restoring {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.Muted.Render("Restoring session..."))
	}

	var body string
	switch m.route {
	case nav.RouteLogin, nav.RouteSignup:
		body = m.loginView.View()
	case nav.RouteSessions:
		body = m.sessionList.View()
	case nav.RouteChat:
		body = m.chatView.View()
	case nav.RouteFacts:
		body = m.factsView.View()
	}

	if m.toasts.HasToasts() {
		overlay := components.RenderToasts(m.toasts.Toasts(), m.width)
		return lipgloss.JoinVertical(lipgloss.Left, overlay, body)
	}
	return body
}

// routeProtected reports whether a route requires an active identity.
func routeProtected(r nav.Route) bool {
	switch r {
	case nav.RouteSessions, nav.RouteChat, nav.RouteFacts:
		return true
	default:
		return false
	}
}
