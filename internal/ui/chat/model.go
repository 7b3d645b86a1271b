// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/model"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

// Fallback error messages for failures with no server detail.
const (
	loadFallback = "Failed to load session history"
	sendFallback = "Failed to send message. Please try again."
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the history-load state of the conversation view.
type State int

const (
	StateLoading  State = iota // History fetch in flight
	StateReady                 // Conversation usable
	StateNotFound              // Terminal: the server does not know this session
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for one conversation. It owns the
// session's timeline; a different session means a different Model.
type Model struct {
	// Identity of this instance, used to discard stale async results.
	id string

	// What we are looking at and as whom.
	sessionID string
	username  string

	// Collaborators
	client *api.Client
	store  *auth.Store
	theme  *styles.Theme

	// State
	state    State
	timeline []model.Message
	sending  bool
	errMsg   string
	markdown bool

	// renderer formats assistant replies when markdown is on. Rebuilt on
	// resize so word wrap tracks the viewport width; nil means plain text.
	renderer *glamour.TermRenderer

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Dimensions
	width  int
	height int
}

// New creates a conversation model for sessionID. The timeline starts
// empty and is populated by the Init history fetch.
func New(client *api.Client, store *auth.Store, theme *styles.Theme, sessionID, username string, markdown bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	m := Model{
		id:        uuid.NewString(),
		sessionID: sessionID,
		username:  username,
		client:    client,
		store:     store,
		theme:     theme,
		state:     StateLoading,
		markdown:  markdown,
		viewport:  vp,
		input:     ti,
		spinner:   sp,
		width:     80,
		height:    24,
	}
	if markdown {
		m.renderer = newMarkdownRenderer(m.width)
	}
	return m
}

// SessionID returns the session this model is mounted on.
func (m Model) SessionID() string { return m.sessionID }

// Timeline returns the current message sequence.
func (m Model) Timeline() []model.Message { return m.timeline }

// Sending reports whether a send is in flight.
func (m Model) Sending() bool { return m.sending }

// CurrentState returns the history-load state.
func (m Model) CurrentState() State { return m.state }

// Err returns the inline error message, if any.
func (m Model) Err() string { return m.errMsg }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the history fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadHistoryCmd(m.client, m.id, m.sessionID),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case spinner.TickMsg:
		if m.state == StateLoading || m.sending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			if m.sending {
				// The typing indicator line animates with the spinner.
				m.updateViewport()
			}
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// HISTORY LOADING
// =============================================================================

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		// Response for a model that was already torn down.
		return m, nil
	}

	if msg.Err != nil {
		if api.IsNotFound(msg.Err) {
			m.state = StateNotFound
			return m, nil
		}
		m.state = StateReady
		m.errMsg = api.UserMessage(msg.Err, loadFallback)
		return m, func() tea.Msg {
			return components.ShowToastMsg{Message: m.errMsg, Kind: components.ToastError}
		}
	}

	m.state = StateReady
	m.errMsg = ""
	m.timeline = model.MessagesFromHistory(msg.SessionID, msg.Entries)
	m.updateViewport()
	return m, nil
}

// =============================================================================
// SENDING
// =============================================================================

// handleSubmit runs the optimistic send transaction: user message first,
// then the typing indicator, then the request. Both appends happen before
// any network round trip.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	if m.sending || m.state != StateReady {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		// Local validation; never reaches the network.
		return m, nil
	}

	m.timeline = append(m.timeline, model.NewUserMessage(text))
	m.timeline = append(m.timeline, model.NewTypingIndicator())
	m.sending = true
	m.errMsg = ""
	m.input.Reset()
	m.updateViewport()

	return m, tea.Batch(
		SendCmd(m.client, m.id, m.sessionID, m.username, text),
		m.spinner.Tick,
	)
}

func (m Model) handleReply(msg ReplyMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}

	m.sending = false
	m.timeline = model.RemoveMessage(m.timeline, model.TypingIndicatorID)

	if msg.Err != nil {
		// The user message stays: it was sent, only the reply failed.
		m.errMsg = api.UserMessage(msg.Err, sendFallback)
		m.updateViewport()
		return m, func() tea.Msg {
			return components.ShowToastMsg{Message: m.errMsg, Kind: components.ToastError}
		}
	}

	m.timeline = append(m.timeline, model.NewAssistantMessage(msg.Reply))
	m.updateViewport()
	return m, nil
}

// =============================================================================
// INPUT HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSubmit()

	case "esc":
		// Back to the session directory, also from the not-found view.
		return m, nav.Go(nav.RouteSessions)

	case "ctrl+l":
		m.store.Logout()
		return m, tea.Batch(
			func() tea.Msg {
				return components.ShowToastMsg{Message: "Logged out successfully", Kind: components.ToastInfo}
			},
			nav.Go(nav.RouteLogin),
		)

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Header, error banner slot, and input each take a line or two.
	contentHeight := msg.Height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = contentHeight
	m.input.Width = msg.Width - 4
	if m.markdown {
		m.renderer = newMarkdownRenderer(msg.Width)
	}
	m.updateViewport()
	return m, nil
}
