// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.viewport.View() + "\n")

	if m.thinking {
		b.WriteString(m.spinner.View() + " " + m.theme.ThinkingText.Render(m.caption()+"...") + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Render(m.theme.InputPrompt.Render("> ")+m.input.View()) + "\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	icon := persona.IconFor(m.persona.Icon)
	accent := m.theme.AccentStyle(m.persona.Color)
	title := fmt.Sprintf("%s %s", icon, m.persona.Name)

	// The description takes whatever columns the title leaves over.
	desc := m.persona.Description
	if m.width > 0 {
		desc = util.TruncateWidth(desc, m.width-runewidth.StringWidth(title)-4)
	}
	return accent.Render(title) + "  " + m.theme.HeaderSubtitle.Render(desc)
}

func (m Model) renderStatusBar() string {
	parts := []string{
		m.theme.ShortcutDesc.Render(util.IntToString(len(m.messages)) + " messages"),
		m.theme.ShortcutKey.Render("Enter") + m.theme.ShortcutDesc.Render(" send"),
		m.theme.ShortcutKey.Render("Esc") + m.theme.ShortcutDesc.Render(" personas"),
		m.theme.ShortcutKey.Render("C-x") + m.theme.ShortcutDesc.Render(" clear history"),
		m.theme.ShortcutKey.Render("C-c") + m.theme.ShortcutDesc.Render(" quit"),
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// renderTranscript renders the full message list.
func (m Model) renderTranscript() string {
	if len(m.messages) == 0 {
		return m.theme.ThinkingText.Render("No messages yet. Say hi!")
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMessage(msg model.Message) string {
	var body string
	switch msg.Role {
	case model.RoleModel:
		body = m.theme.ModelBubble.Render(m.renderMarkdown(msg.Text))
	default:
		body = m.theme.UserBubble.Render(msg.Text)
	}

	if m.showTimestamps {
		stamp := m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
		return stamp + "\n" + body
	}
	return body
}

// renderMarkdown renders model replies as markdown, falling back to the raw
// text when the renderer is unavailable or fails.
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
