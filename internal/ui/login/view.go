// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"fmt"
	"strings"
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder

	if m.mode == ModeSignup {
		b.WriteString(m.theme.HeaderTitle.Render("Create Account"))
		b.WriteString("\n")
		b.WriteString(m.theme.HeaderSubtitle.Render("Sign up to start chatting"))
	} else {
		b.WriteString(m.theme.HeaderTitle.Render("AI Chat"))
		b.WriteString("\n")
		b.WriteString(m.theme.HeaderSubtitle.Render("Sign in to continue"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.Muted.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.username.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Muted.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.submitting {
		verb := "Signing in"
		if m.mode == ModeSignup {
			verb = "Creating account"
		}
		b.WriteString(fmt.Sprintf("%s %s...", m.spinner.View(), verb))
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) helpView() string {
	switch m.mode {
	case ModeSignup:
		return m.theme.HelpDesc.Render("enter submit  •  tab next field  •  ctrl+n back to login  •  ctrl+c quit")
	default:
		return m.theme.HelpDesc.Render("enter submit  •  tab next field  •  ctrl+n sign up  •  ctrl+c quit")
	}
}
