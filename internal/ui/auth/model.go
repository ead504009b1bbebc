// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the login and registration view for the TUI.
package auth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/ui/styles"
	"github.com/adxsh/persona-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LoginMsg is emitted when the user submits the login form.
type LoginMsg struct {
	UniqueID string
}

// RegisterMsg is emitted when the user submits the registration form.
type RegisterMsg struct {
	Profile model.UserProfile
}

// =============================================================================
// TABS AND FIELDS
// =============================================================================

type tab int

const (
	tabLogin tab = iota
	tabRegister
)

// Registration field order matches the form top to bottom.
const (
	fieldName = iota
	fieldUniqueID
	fieldAge
	fieldGender
	fieldAPIKey
	fieldCount
)

// genderSuggestions cycles with tab on the gender field. Free text is also
// accepted.
var genderSuggestions = []string{"Female", "Male", "Non-binary", "Prefer not to say"}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the auth view.
type Model struct {
	theme *styles.Theme

	tab   tab
	width int

	// Login
	loginInput  textinput.Model
	knownUsers  []model.UserProfile
	userCursor  int
	pickingUser bool

	// Register
	inputs       [fieldCount]textinput.Model
	focusedField int
	genderCycle  int

	// Validation feedback from the controller
	errMsg string
}

// New creates the auth view. knownUsers pre-populates the login picker;
// defaultAPIKey, when non-empty, pre-fills the API key field.
func New(theme *styles.Theme, knownUsers map[string]model.UserProfile, defaultAPIKey string) Model {
	m := Model{theme: theme}

	m.loginInput = textinput.New()
	m.loginInput.Placeholder = "unique id"
	m.loginInput.CharLimit = 64
	m.loginInput.Focus()

	sorted := make([]model.UserProfile, 0, len(knownUsers))
	for _, u := range knownUsers {
		sorted = append(sorted, u)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].UniqueID < sorted[j].UniqueID })
	m.knownUsers = sorted

	placeholders := [fieldCount]string{"name", "unique id", "age", "gender", "Gemini API key"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		m.inputs[i] = in
	}
	m.inputs[fieldAPIKey].EchoMode = textinput.EchoPassword
	m.inputs[fieldAPIKey].EchoCharacter = '*'
	m.inputs[fieldAPIKey].SetValue(defaultAPIKey)

	if len(sorted) == 0 {
		m.tab = tabRegister
		m.loginInput.Blur()
		m.inputs[fieldName].Focus()
	}
	return m
}

// SetError displays a validation message under the active form.
func (m *Model) SetError(msg string) { m.errMsg = msg }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			return m.switchTab(), nil
		}
		if m.tab == tabLogin {
			return m.updateLogin(msg)
		}
		return m.updateRegister(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) switchTab() Model {
	m.errMsg = ""
	if m.tab == tabLogin {
		m.tab = tabRegister
		m.loginInput.Blur()
		m.focusedField = fieldName
		m.refocus()
	} else {
		m.tab = tabLogin
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		m.loginInput.Focus()
	}
	return m
}

func (m Model) updateLogin(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if len(m.knownUsers) > 0 {
			m.pickingUser = true
			if m.userCursor > 0 {
				m.userCursor--
			}
			m.loginInput.SetValue(m.knownUsers[m.userCursor].UniqueID)
			return m, nil
		}
	case "down":
		if m.pickingUser && m.userCursor < len(m.knownUsers)-1 {
			m.userCursor++
			m.loginInput.SetValue(m.knownUsers[m.userCursor].UniqueID)
			return m, nil
		}
	case "enter":
		id := strings.TrimSpace(m.loginInput.Value())
		if id == "" {
			m.errMsg = "enter a unique id"
			return m, nil
		}
		return m, func() tea.Msg { return LoginMsg{UniqueID: id} }
	default:
		m.pickingUser = false
	}

	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m Model) updateRegister(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if m.focusedField == fieldGender {
			// Cycle through suggestions instead of moving focus.
			m.inputs[fieldGender].SetValue(genderSuggestions[m.genderCycle])
			m.genderCycle = (m.genderCycle + 1) % len(genderSuggestions)
			return m, nil
		}
		m.focusedField = (m.focusedField + 1) % fieldCount
		m.refocus()
		return m, nil
	case "shift+tab", "up":
		m.focusedField = (m.focusedField + fieldCount - 1) % fieldCount
		m.refocus()
		return m, nil
	case "down":
		m.focusedField = (m.focusedField + 1) % fieldCount
		m.refocus()
		return m, nil
	case "enter":
		if m.focusedField < fieldCount-1 {
			m.focusedField++
			m.refocus()
			return m, nil
		}
		profile := m.collect()
		return m, func() tea.Msg { return RegisterMsg{Profile: profile} }
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.inputs {
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) refocus() {
	for i := range m.inputs {
		if i == m.focusedField {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) collect() model.UserProfile {
	age := 0
	if v := strings.TrimSpace(m.inputs[fieldAge].Value()); v != "" {
		fmt.Sscanf(v, "%d", &age)
	}
	return model.UserProfile{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		UniqueID: strings.TrimSpace(m.inputs[fieldUniqueID].Value()),
		Age:      age,
		Gender:   strings.TrimSpace(m.inputs[fieldGender].Value()),
		APIKey:   strings.TrimSpace(m.inputs[fieldAPIKey].Value()),
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := m.theme.HeaderTitle.Render("Persona Chat")
	subtitle := m.theme.HeaderSubtitle.Render("sign in or create a profile")
	b.WriteString(title + "\n" + subtitle + "\n\n")

	tabs := m.renderTabs()
	b.WriteString(tabs + "\n\n")

	if m.tab == tabLogin {
		b.WriteString(m.viewLogin())
	} else {
		b.WriteString(m.viewRegister())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.FormError.Render(m.errMsg))
	}

	help := m.theme.ShortcutKey.Render("ctrl+t") + m.theme.ShortcutDesc.Render(" switch form  ") +
		m.theme.ShortcutKey.Render("ctrl+c") + m.theme.ShortcutDesc.Render(" quit")
	b.WriteString("\n\n" + help)

	return m.theme.Container.Render(b.String())
}

func (m Model) renderTabs() string {
	login := m.theme.TabInactive.Render("Login")
	register := m.theme.TabInactive.Render("Register")
	if m.tab == tabLogin {
		login = m.theme.TabActive.Render("Login")
	} else {
		register = m.theme.TabActive.Render("Register")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, login, register)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.FormLabelFoc.Render("Unique ID") + "\n")
	b.WriteString(m.loginInput.View() + "\n")

	if len(m.knownUsers) > 0 {
		b.WriteString("\n" + m.theme.FormHint.Render("known profiles (up/down to pick):") + "\n")
		idWidth := 0
		for _, u := range m.knownUsers {
			if w := runewidth.StringWidth(u.UniqueID); w > idWidth {
				idWidth = w
			}
		}
		lineWidth := 44
		if m.width > 0 && m.width-8 < lineWidth {
			lineWidth = m.width - 8
		}
		for i, u := range m.knownUsers {
			line := util.TruncateWidth(util.PadRight(u.UniqueID, idWidth)+"  "+u.Name, lineWidth)
			if m.pickingUser && i == m.userCursor {
				b.WriteString(m.theme.ListItemSelected.Render(line) + "\n")
			} else {
				b.WriteString(m.theme.ListItem.Render(line) + "\n")
			}
		}
	}
	return m.theme.FormBox.Render(b.String())
}

func (m Model) viewRegister() string {
	labels := [fieldCount]string{"Name", "Unique ID", "Age", "Gender", "API Key"}
	var b strings.Builder
	for i := range m.inputs {
		label := m.theme.FormLabel.Render(labels[i])
		if i == m.focusedField {
			label = m.theme.FormLabelFoc.Render(labels[i])
		}
		b.WriteString(label + "\n" + m.inputs[i].View() + "\n")
		if i == fieldGender && i == m.focusedField {
			b.WriteString(m.theme.FormHint.Render("tab cycles suggestions") + "\n")
		}
	}
	b.WriteString("\n" + m.theme.FormHint.Render("enter on the last field submits"))
	return m.theme.FormBox.Render(b.String())
}
