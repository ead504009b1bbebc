// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FormBox       lipgloss.Style
	FormLabel     lipgloss.Style
	FormLabelFoc  lipgloss.Style
	FormError     lipgloss.Style
	FormHint      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonDefault lipgloss.Style

	// ==========================================================================
	// LIST STYLES
	// ==========================================================================

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListTitle        lipgloss.Style
	ListDesc         lipgloss.Style
	ListDescSelected lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble  lipgloss.Style
	ModelBubble lipgloss.Style
	Timestamp   lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND ERROR STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	ErrorText    lipgloss.Style
}

// New creates a theme with all styles configured. pref selects the
// background assumption: "dark", "light", or "auto" to detect from the
// terminal.
func New(pref string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch pref {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Forms
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FormLabelFoc = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	t.FormError = lipgloss.NewStyle().
		Foreground(Rose)

	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.TabActive = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Bold(true).
		Padding(0, 2)

	t.ButtonDefault = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	// Lists
	t.ListItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Bold(true).
		Padding(0, 1)

	t.ListTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ListDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ListDescSelected = lipgloss.NewStyle().
		Foreground(TextInverse)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.ModelBubble = lipgloss.NewStyle().
		Foreground(ModelBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ModelBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner and errors
	t.Spinner = lipgloss.NewStyle().
		Foreground(Violet)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
}

// AccentStyle returns a bold style in the given persona accent color.
func (t *Theme) AccentStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PersonaAccent(hex)).Bold(true)
}
