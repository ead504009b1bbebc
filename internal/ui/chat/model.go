// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmitMsg is emitted when the user sends a chat message.
type SubmitMsg struct {
	Text string
}

// BackMsg is emitted when the user returns to persona selection.
type BackMsg struct{}

// DeleteMsg is emitted when the user clears the conversation history.
type DeleteMsg struct{}

// thinkingCaptions rotate under the spinner while a reply is pending.
var thinkingCaptions = []string{
	"thinking",
	"composing a reply",
	"consulting the neural core",
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the conversation view.
type Model struct {
	theme   *styles.Theme
	persona persona.Config
	keyMap  KeyMap

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	messages       []model.Message
	thinking       bool
	thinkingStart  time.Time
	showTimestamps bool

	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

// New creates the conversation view for the given persona with its prior
// history.
func New(theme *styles.Theme, p persona.Config, history []model.Message, showTimestamps bool) Model {
	in := textinput.New()
	in.Placeholder = "Type a message..."
	in.CharLimit = 4000
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	// Markdown rendering falls back to plain text when the renderer cannot
	// be built.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		theme:          theme,
		persona:        p,
		keyMap:         DefaultKeyMap(),
		input:          in,
		spinner:        sp,
		messages:       history,
		showTimestamps: showTimestamps,
		renderer:       renderer,
	}
}

// SetMessages replaces the transcript, for example after a history delete.
func (m *Model) SetMessages(msgs []model.Message) {
	m.messages = msgs
	m.refreshViewport(true)
}

// AppendMessage adds one message to the transcript and scrolls to it.
func (m *Model) AppendMessage(msg model.Message) {
	m.messages = append(m.messages, msg)
	m.refreshViewport(true)
}

// SetThinking toggles the pending-reply spinner.
func (m *Model) SetThinking(on bool) {
	m.thinking = on
	if on {
		m.thinkingStart = time.Now()
	}
}

// Thinking reports whether a reply is pending.
func (m Model) Thinking() bool { return m.thinking }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keyMap.Delete):
			return m, func() tea.Msg { return DeleteMsg{} }

		case key.Matches(msg, m.keyMap.Submit):
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.thinking {
				return m, nil
			}
			m.input.Reset()
			return m, func() tea.Msg { return SubmitMsg{Text: text} }

		case key.Matches(msg, m.keyMap.Up),
			key.Matches(msg, m.keyMap.Down),
			key.Matches(msg, m.keyMap.PageUp),
			key.Matches(msg, m.keyMap.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// resize lays out the viewport against the current terminal size. Header,
// input, and status rows take fixed space.
func (m *Model) resize() {
	const chromeRows = 6
	h := m.height - chromeRows
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	m.input.Width = m.width - 6
	m.refreshViewport(true)
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// caption picks a thinking caption based on elapsed time.
func (m Model) caption() string {
	idx := int(time.Since(m.thinkingStart)/(3*time.Second)) % len(thinkingCaptions)
	return thinkingCaptions[idx]
}
