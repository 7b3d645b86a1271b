// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sessions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the session directory.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("My Sessions"))
	b.WriteString("\n")
	b.WriteString(m.theme.HeaderSubtitle.Render(fmt.Sprintf("Welcome back, %s", m.username)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s Loading sessions...", m.spinner.View()))
		b.WriteString("\n")
	case len(m.sessions) == 0:
		b.WriteString(m.theme.Muted.Render("No sessions yet. Press 'n' to start a new chat."))
		b.WriteString("\n")
	default:
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.creating {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s Creating session...", m.spinner.View()))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) helpView() string {
	entries := []struct{ key, desc string }{
		{"enter", "open"},
		{"n", "new chat"},
		{"r", "refresh"},
		{"d", "facts"},
		{"ctrl+l", "logout"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.HelpKey.Render(e.key),
			m.theme.HelpDesc.Render(" "+e.desc),
		))
	}
	return strings.Join(parts, m.theme.HelpDesc.Render("  •  "))
}
