// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/ui/styles"
)

func newTestModel(t *testing.T, history []model.Message) Model {
	t.Helper()
	p, err := persona.ByID(persona.Tutor)
	if err != nil {
		t.Fatal(err)
	}
	m := New(styles.New("dark"), p, history, false)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	return m
}

func TestViewShowsMessageCount(t *testing.T) {
	history := []model.Message{
		model.NewUserMessage("hi"),
		model.NewModelMessage("hello"),
	}
	view := newTestModel(t, history).View()
	if !strings.Contains(view, "2 messages") {
		t.Error("status bar should show the transcript length")
	}
}

func TestHeaderTruncatesDescriptionToWidth(t *testing.T) {
	m := newTestModel(t, nil)
	header := m.renderHeader()
	if !strings.Contains(header, "...") {
		t.Errorf("long description should be truncated at 40 columns, got %q", header)
	}
	if !strings.Contains(header, "Tutor") {
		t.Errorf("header should keep the persona name, got %q", header)
	}
}

func TestSubmitBlockedWhileThinking(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetThinking(true)
	m.input.SetValue("hello")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("submit while a reply is pending should be ignored")
	}
	if m.input.Value() != "hello" {
		t.Error("input should keep its text when the submit is refused")
	}
}
