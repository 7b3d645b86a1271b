// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/aichat-tui/internal/auth"
	"github.com/jeranaias/aichat-tui/internal/ui/components"
	"github.com/jeranaias/aichat-tui/internal/ui/nav"
	"github.com/jeranaias/aichat-tui/internal/ui/styles"
)

// Mode selects which credential operation the form performs.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

// focus index into the form fields.
const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// Model is the Bubble Tea model for the login and signup forms.
type Model struct {
	// Identity of this instance, used to discard stale async results.
	id string

	mode Mode

	store *auth.Store
	theme *styles.Theme

	username textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	errMsg     string

	spinner spinner.Model

	width  int
	height int
}

// New creates a form in the given mode.
func New(store *auth.Store, theme *styles.Theme, mode Mode) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 32
	username.Prompt = "> "
	username.PromptStyle = theme.InputPrompt
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 32
	password.Prompt = "> "
	password.PromptStyle = theme.InputPrompt
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	return Model{
		id:       uuid.NewString(),
		mode:     mode,
		store:    store,
		theme:    theme,
		username: username,
		password: password,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// CurrentMode returns the form mode.
func (m Model) CurrentMode() Mode { return m.mode }

// Submitting reports whether a credential call is in flight.
func (m Model) Submitting() bool { return m.submitting }

// Err returns the inline error message, if any.
func (m Model) Err() string { return m.errMsg }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case SignupResultMsg:
		return m.handleSignupResult(msg)

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateFields(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		return m.submit()

	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount), nil

	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil

	case "ctrl+n":
		// Flip between login and signup, keeping the typed username.
		if m.mode == ModeLogin {
			m.mode = ModeSignup
		} else {
			m.mode = ModeLogin
		}
		m.errMsg = ""
		m.password.SetValue("")
		return m, nil

	case "esc":
		if m.mode == ModeSignup {
			return m, nav.Go(nav.RouteLogin)
		}
		return m, nil
	}

	return m.updateFields(msg)
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()

	if username == "" {
		m.errMsg = "Username is required"
		return m, nil
	}
	if password == "" {
		m.errMsg = "Password is required"
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""

	var cmd tea.Cmd
	if m.mode == ModeSignup {
		cmd = SignupCmd(m.store, m.id, username, password)
	} else {
		cmd = LoginCmd(m.store, m.id, username, password)
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) handleLoginResult(msg LoginResultMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}

	m.submitting = false
	if msg.Err != nil {
		// Inline error plus a transient notice, like every other
		// non-validation failure.
		m.errMsg = auth.LoginErrorMessage(msg.Err)
		return m, errorToastCmd(m.errMsg)
	}

	return m, tea.Batch(
		func() tea.Msg {
			return components.ShowToastMsg{Message: "Login successful!", Kind: components.ToastSuccess}
		},
		nav.Go(nav.RouteSessions),
	)
}

func (m Model) handleSignupResult(msg SignupResultMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}

	m.submitting = false
	if msg.Err != nil {
		m.errMsg = auth.SignupErrorMessage(msg.Err)
		return m, errorToastCmd(m.errMsg)
	}

	// Signup does not sign the user in. Return to the login form with the
	// username prefilled.
	m.mode = ModeLogin
	m.password.SetValue("")
	m = m.setFocus(fieldPassword)
	return m, func() tea.Msg {
		return components.ShowToastMsg{
			Message: "Account created successfully! Redirecting to login...",
			Kind:    components.ToastSuccess,
		}
	}
}

func errorToastCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return components.ShowToastMsg{Message: message, Kind: components.ToastError}
	}
}

func (m Model) setFocus(field int) Model {
	m.focus = field
	if field == fieldUsername {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.username.Blur()
		m.password.Focus()
	}
	return m
}

func (m Model) updateFields(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
