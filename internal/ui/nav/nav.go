// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav defines the navigation intents exchanged between views and
// the app router. Views emit a GoMsg and never switch themselves; the app
// model owns which view is mounted.
package nav

import tea "github.com/charmbracelet/bubbletea"

// Route identifies one of the app's views.
type Route int

const (
	RouteLogin Route = iota
	RouteSignup
	RouteSessions
	RouteChat
	RouteFacts
)

// String returns the route name for display and logging.
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteSignup:
		return "signup"
	case RouteSessions:
		return "sessions"
	case RouteChat:
		return "chat"
	case RouteFacts:
		return "facts"
	default:
		return "unknown"
	}
}

// GoMsg is a fire-and-forget navigation intent. SessionID is set only for
// RouteChat.
type GoMsg struct {
	Route     Route
	SessionID string
}

// Path returns the URL-style path of the intent, mirroring the service's
// web frontend routes.
func (m GoMsg) Path() string {
	switch m.Route {
	case RouteLogin:
		return "/login"
	case RouteSignup:
		return "/signup"
	case RouteSessions:
		return "/sessions"
	case RouteChat:
		return "/chat/" + m.SessionID
	case RouteFacts:
		return "/debug"
	default:
		return "/"
	}
}

// Go creates a command that navigates to a route.
func Go(route Route) tea.Cmd {
	return func() tea.Msg {
		return GoMsg{Route: route}
	}
}

// GoChat creates a command that navigates to a chat session.
func GoChat(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return GoMsg{Route: RouteChat, SessionID: sessionID}
	}
}
