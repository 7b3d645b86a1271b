// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components shared by the views.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Header
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// Message bubbles
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	PlaceholderText lipgloss.Style
	MessageMeta     lipgloss.Style

	// Input area
	InputPrompt lipgloss.Style

	// States
	Spinner   lipgloss.Style
	ErrorText lipgloss.Style
	ErrorBox  lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Session directory
	ListTitle    lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Footer / help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	profile := termenv.ColorProfile()

	return &Theme{
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,

		Header: lipgloss.NewStyle().
			Background(SurfaceDim).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		HeaderSubtitle: lipgloss.NewStyle().
			Foreground(TextMuted),

		UserBubble: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		AssistantBubble: lipgloss.NewStyle().
			Foreground(Purple),
		PlaceholderText: lipgloss.NewStyle().
			Foreground(TextFaint).
			Italic(true),
		MessageMeta: lipgloss.NewStyle().
			Foreground(TextFaint),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(Purple),
		ErrorText: lipgloss.NewStyle().
			Foreground(Rose),
		ErrorBox: lipgloss.NewStyle().
			Foreground(Rose).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Rose).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(Emerald),
		Muted: lipgloss.NewStyle().
			Foreground(TextMuted),

		ListTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		ListItem: lipgloss.NewStyle().
			Foreground(Text),
		ListSelected: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(Cyan),
		HelpDesc: lipgloss.NewStyle().
			Foreground(TextMuted),
	}
}
