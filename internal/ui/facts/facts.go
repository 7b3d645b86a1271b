// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package facts implements the debug view showing the user facts the server
// has extracted from past conversations, rendered as indented JSON.
package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/aichat-tui/internal/api"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

// LoadedMsg carries the fetched facts payload.
type LoadedMsg struct {
	ID    string // issuing model instance
	Facts any
	Err   error
}

// LoadCmd fetches the user facts.
func LoadCmd(client *api.Client, instanceID, username string) tea.Cmd {
	return func() tea.Msg {
		facts, err := client.GetFacts(context.Background(), username)
		return LoadedMsg{ID: instanceID, Facts: facts, Err: err}
	}
}

// Model is the Bubble Tea model for the facts view.
type Model struct {
	id       string
	username string

	client *api.Client
	theme  *styles.Theme

	loading bool
	errMsg  string
	body    string

	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
}

// New creates a facts view for the given identity.
func New(client *api.Client, theme *styles.Theme, username string) Model {
	vp := viewport.New(80, 20)

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
		theme:    theme,
		loading:  true,
		viewport: vp,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// Loading reports whether the fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// Body returns the rendered facts text.
func (m Model) Body() string { return m.body }

// Err returns the inline error message, if any.
func (m Model) Err() string { return m.errMsg }

// Init starts the facts fetch.
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
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 5
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, nav.Go(nav.RouteSessions)
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
		}

	case LoadedMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.errMsg = api.UserMessage(msg.Err, "Failed to load user facts")
			return m, nil
		}
		m.errMsg = ""
		m.body = renderFacts(msg.Facts)
		m.viewport.SetContent(m.body)
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the facts view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("User Facts"))
	b.WriteString("\n")
	b.WriteString(m.theme.HeaderSubtitle.Render(fmt.Sprintf("Known facts about %s", m.username)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s Loading facts...", m.spinner.View()))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HelpDesc.Render("esc back  •  r refresh  •  ctrl+c quit"))

	return b.String()
}

// renderFacts pretty-prints whatever JSON shape the server returns.
func renderFacts(facts any) string {
	if facts == nil {
		return "No facts recorded yet."
	}
	out, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", facts)
	}
	return string(out)
}
