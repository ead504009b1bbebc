// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package personas provides the persona selection view for the TUI.
package personas

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/ui/styles"
)

// SelectedMsg is emitted when the user picks a persona.
type SelectedMsg struct {
	ID persona.ID
}

// LogoutMsg is emitted when the user backs out to the login screen.
type LogoutMsg struct{}

// Model is the Bubble Tea model for the persona selection view.
type Model struct {
	theme    *styles.Theme
	catalog  []persona.Config
	cursor   int
	userName string
	errMsg   string
	busy     bool
	width    int
}

// New creates the persona selection view for the named user.
func New(theme *styles.Theme, userName string) Model {
	return Model{
		theme:    theme,
		catalog:  persona.List(),
		userName: userName,
	}
}

// SetError displays an error line, for example a failed gateway init. It
// also clears the busy flag the enter key set so the list is usable again.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.busy = false
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.catalog)-1 {
				m.cursor++
			}
		case "enter":
			m.errMsg = ""
			m.busy = true
			id := m.catalog[m.cursor].ID
			return m, func() tea.Msg { return SelectedMsg{ID: id} }
		case "esc":
			return m, func() tea.Msg { return LogoutMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := m.theme.HeaderTitle.Render("Choose a persona")
	subtitle := m.theme.HeaderSubtitle.Render(fmt.Sprintf("hi %s, who do you want to talk to?", m.userName))
	b.WriteString(title + "\n" + subtitle + "\n\n")

	for i, p := range m.catalog {
		icon := persona.IconFor(p.Icon)
		accent := m.theme.AccentStyle(p.Color)
		name := accent.Render(fmt.Sprintf("%s %s", icon, p.Name))

		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render("> "+p.Name) + "\n")
			b.WriteString("  " + m.theme.ListDesc.Render(p.Description) + "\n")
		} else {
			b.WriteString(m.theme.ListItem.Render(name) + "\n")
			b.WriteString("  " + m.theme.ListDesc.Render(p.Description) + "\n")
		}
	}

	if m.busy {
		b.WriteString("\n" + m.theme.ThinkingText.Render("starting session..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.ErrorText.Render(m.errMsg))
	}

	help := m.theme.ShortcutKey.Render("enter") + m.theme.ShortcutDesc.Render(" select  ") +
		m.theme.ShortcutKey.Render("esc") + m.theme.ShortcutDesc.Render(" logout  ") +
		m.theme.ShortcutKey.Render("ctrl+c") + m.theme.ShortcutDesc.Render(" quit")
	b.WriteString("\n\n" + help)

	return m.theme.Container.Render(b.String())
}
