// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sessions

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/model"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

// Fallback error messages for failures with no server detail.
const (
	loadFallback   = "Failed to load sessions"
	createFallback = "Failed to create session"
)

// maxNameWidth caps session names in the list display.
const maxNameWidth = 40

// =============================================================================
// LIST ITEM
// =============================================================================

// item adapts a model.Session to the bubbles list.
type item struct {
	session model.Session
}

func (i item) Title() string {
	return runewidth.Truncate(i.session.DisplayName(), maxNameWidth, "...")
}

func (i item) Description() string { return i.session.ID }
func (i item) FilterValue() string { return i.session.DisplayName() }

// =============================================================================
// DIRECTORY MODEL
// =============================================================================

// Model is the Bubble Tea model for the session directory.
type Model struct {
	// Identity of this instance, used to discard stale async results.
	id string

	username string

	// Collaborators
	client *api.Client
	store  *auth.Store
	theme  *styles.Theme

	// State. sessions is the authoritative local cache; the list widget
	// mirrors it for display.
	sessions []model.Session
	loading  bool
	creating bool
	errMsg   string

	// UI components
	list    list.Model
	spinner spinner.Model

	// Dimensions
	width  int
	height int
}

// New creates a session directory model for the given identity.
func New(client *api.Client, store *auth.Store, theme *styles.Theme, username string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(styles.Cyan).BorderForeground(styles.Cyan)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(styles.TextMuted).BorderForeground(styles.Cyan)

	l := list.New(nil, delegate, 80, 20)
	l.Title = "My Sessions"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	return Model{
		id:       uuid.NewString(),
		username: username,
		client:   client,
		store:    store,
		theme:    theme,
		loading:  true,
		list:     l,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// Username returns the identity the directory is mounted for.
func (m Model) Username() string { return m.username }

// Sessions returns the local session list cache.
func (m Model) Sessions() []model.Session { return m.sessions }

// Loading reports whether a list fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// Creating reports whether a creation is in flight.
func (m Model) Creating() bool { return m.creating }

// Err returns the inline error message, if any.
func (m Model) Err() string { return m.errMsg }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the session list fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCmd(m.client, m.id, m.username),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LoadedMsg:
		return m.handleLoaded(msg)

	case CreatedMsg:
		return m.handleCreated(msg)

	case spinner.TickMsg:
		if m.loading || m.creating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// =============================================================================
// RESULT HANDLING
// =============================================================================

func (m Model) handleLoaded(msg LoadedMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}

	m.loading = false
	if msg.Err != nil {
		// Prior list stays in place; on first load that is the empty list.
		m.errMsg = api.UserMessage(msg.Err, loadFallback)
		return m, func() tea.Msg {
			return components.ShowToastMsg{Message: m.errMsg, Kind: components.ToastError}
		}
	}

	m.errMsg = ""
	m.sessions = msg.Sessions
	if m.sessions == nil {
		m.sessions = []model.Session{}
	}
	m.syncList()
	return m, nil
}

func (m Model) handleCreated(msg CreatedMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}

	m.creating = false
	if msg.Err != nil {
		// No speculative insert happened: the ID is server-assigned and
		// unknown until the response arrives, so there is nothing to roll
		// back.
		m.errMsg = api.UserMessage(msg.Err, createFallback)
		return m, func() tea.Msg {
			return components.ShowToastMsg{Message: m.errMsg, Kind: components.ToastError}
		}
	}

	m.errMsg = ""
	m.sessions = append(m.sessions, model.Session{
		ID:   msg.SessionID,
		Name: model.DefaultSessionName,
	})
	m.syncList()

	return m, tea.Batch(
		func() tea.Msg {
			return components.ShowToastMsg{Message: "New session created successfully!", Kind: components.ToastSuccess}
		},
		nav.GoChat(msg.SessionID),
	)
}

// =============================================================================
// INPUT HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Ignore all actions while filtering so typing is not hijacked.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		if sel, ok := m.list.SelectedItem().(item); ok {
			return m, nav.GoChat(sel.session.ID)
		}
		return m, nil

	case "n":
		if m.creating {
			return m, nil
		}
		m.creating = true
		m.errMsg = ""
		return m, tea.Batch(
			CreateCmd(m.client, m.id, m.username),
			m.spinner.Tick,
		)

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(
			LoadCmd(m.client, m.id, m.username),
			m.spinner.Tick,
		)

	case "d":
		return m, nav.Go(nav.RouteFacts)

	case "ctrl+l":
		m.store.Logout()
		return m, tea.Batch(
			func() tea.Msg {
				return components.ShowToastMsg{Message: "Logged out successfully", Kind: components.ToastInfo}
			},
			nav.Go(nav.RouteLogin),
		)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// syncList mirrors the session cache into the list widget, keeping the
// selection when possible.
func (m *Model) syncList() {
	items := make([]list.Item, len(m.sessions))
	for i, s := range m.sessions {
		items[i] = item{session: s}
	}
	m.list.SetItems(items)
}
