// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aichat-tui/internal/model"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// newMarkdownRenderer builds a glamour renderer wrapping at the transcript
// width. Returns nil on failure; callers fall back to plain text.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails.
func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the conversation.
func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateNotFound:
		return m.viewNotFound()
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewHeader() string {
	title := m.theme.HeaderTitle.Render("Chat Session")
	id := m.theme.HeaderSubtitle.Render(m.sessionID)
	return m.theme.Header.Width(m.width).Render(title + "  " + id)
}

func (m Model) viewLoading() string {
	text := m.spinner.View() + " Loading chat history..."
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.Muted.Render(text))
}

func (m Model) viewNotFound() string {
	box := m.theme.ErrorBox.Render(
		m.theme.ErrorText.Bold(true).Render("Session Not Found") + "\n\n" +
			"The session you're looking for doesn't exist\nor has been removed." + "\n\n" +
			m.theme.Muted.Render("esc: back to sessions"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewHelp() string {
	sep := m.theme.HelpDesc.Render(" | ")
	parts := []string{
		m.theme.HelpKey.Render("enter") + m.theme.HelpDesc.Render(" send"),
		m.theme.HelpKey.Render("esc") + m.theme.HelpDesc.Render(" sessions"),
		m.theme.HelpKey.Render("ctrl+l") + m.theme.HelpDesc.Render(" logout"),
	}
	return strings.Join(parts, sep)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// updateViewport rebuilds the transcript and keeps the latest message in
// view.
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	if len(m.timeline) == 0 {
		return m.theme.Muted.Render("No messages yet\nStart a conversation with your AI assistant")
	}

	var b strings.Builder
	for i, msg := range m.timeline {
		if i > 0 {
			b.WriteString("\n\n")
		}

		if msg.IsPlaceholder() {
			b.WriteString(m.theme.AssistantBubble.Render(msg.Role.DisplayName()))
			b.WriteString("\n")
			b.WriteString(m.theme.PlaceholderText.Render(m.spinner.View() + " " + msg.Content))
			continue
		}

		name := m.theme.AssistantBubble.Render(msg.Role.DisplayName())
		content := msg.Content
		if msg.Role == model.RoleUser {
			name = m.theme.UserBubble.Render(msg.Role.DisplayName())
		} else if m.markdown {
			content = m.renderMarkdown(content)
		}

		b.WriteString(name)
		b.WriteString(m.theme.MessageMeta.Render("  " + msg.Timestamp.Format("15:04")))
		b.WriteString("\n")
		b.WriteString(content)
	}
	return b.String()
}
