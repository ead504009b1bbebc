// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the root Bubble Tea application model. It switches
// between the auth, persona selection, and chat pages as the session moves
// through its states.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adxsh/persona-tui/internal/config"
	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/session"
	"github.com/adxsh/persona-tui/internal/ui/auth"
	"github.com/adxsh/persona-tui/internal/ui/chat"
	"github.com/adxsh/persona-tui/internal/ui/personas"
	"github.com/adxsh/persona-tui/internal/ui/styles"
)

// =============================================================================
// PAGES
// =============================================================================

type page int

const (
	pageAuth page = iota
	pagePersonas
	pageChat
)

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

// personaReadyMsg reports the outcome of an async persona session start.
type personaReadyMsg struct {
	err error
}

// replyMsg reports the outcome of an async message send.
type replyMsg struct {
	err error
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model.
type App struct {
	theme *styles.Theme
	ctrl  *session.Controller
	cfg   *config.Config

	page     page
	auth     auth.Model
	personas personas.Model
	chat     chat.Model

	width  int
	height int
}

// NewApp creates the root application model starting at the auth page.
func NewApp(theme *styles.Theme, ctrl *session.Controller, cfg *config.Config) App {
	return App{
		theme: theme,
		ctrl:  ctrl,
		cfg:   cfg,
		page:  pageAuth,
		auth:  auth.New(theme, ctrl.KnownUsers(), cfg.Gemini.APIKey),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.auth.Init()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Pages built later get the size replayed on entry.
		a.width = msg.Width
		a.height = msg.Height
		return a.forwardToActive(msg)

	case auth.LoginMsg:
		if err := a.ctrl.Login(msg.UniqueID); err != nil {
			a.auth.SetError(err.Error())
			return a, nil
		}
		return a.enterPersonas()

	case auth.RegisterMsg:
		if err := a.ctrl.Register(msg.Profile); err != nil {
			a.auth.SetError(err.Error())
			return a, nil
		}
		return a.enterPersonas()

	case personas.SelectedMsg:
		return a, a.startPersonaCmd(msg.ID)

	case personaReadyMsg:
		if msg.err != nil {
			a.personas.SetError(msg.err.Error())
			return a, nil
		}
		return a.enterChat()

	case personas.LogoutMsg:
		a.ctrl.Logout()
		a.page = pageAuth
		a.auth = auth.New(a.theme, a.ctrl.KnownUsers(), a.cfg.Gemini.APIKey)
		return a, a.resend(a.auth.Init())

	case chat.SubmitMsg:
		// Echo the user turn immediately; the transcript re-syncs from the
		// controller when the reply lands.
		a.chat.AppendMessage(model.NewUserMessage(msg.Text))
		a.chat.SetThinking(true)
		return a, a.sendCmd(msg.Text)

	case replyMsg:
		a.chat.SetThinking(false)
		a.chat.SetMessages(a.ctrl.Messages())
		return a, nil

	case chat.BackMsg:
		a.ctrl.Back()
		return a.enterPersonas()

	case chat.DeleteMsg:
		if err := a.ctrl.DeleteConversation(); err == nil {
			a.chat.SetMessages(a.ctrl.Messages())
		}
		return a, nil
	}

	return a.forwardToActive(msg)
}

// enterPersonas moves to the persona selection page.
func (a App) enterPersonas() (tea.Model, tea.Cmd) {
	name := ""
	if user, ok := a.ctrl.User(); ok {
		name = user.Name
	}
	a.page = pagePersonas
	a.personas = personas.New(a.theme, name)
	return a, a.resend(a.personas.Init())
}

// enterChat moves to the conversation page for the active persona.
func (a App) enterChat() (tea.Model, tea.Cmd) {
	p, ok := a.ctrl.Persona()
	if !ok {
		return a, nil
	}
	a.page = pageChat
	a.chat = chat.New(a.theme, p, a.ctrl.Messages(), a.cfg.UI.ShowTimestamps)
	return a, a.resend(a.chat.Init())
}

// resend batches a page Init with a window size replay so freshly built
// pages lay themselves out without waiting for a resize.
func (a App) resend(init tea.Cmd) tea.Cmd {
	if a.width == 0 {
		return init
	}
	size := tea.WindowSizeMsg{Width: a.width, Height: a.height}
	return tea.Batch(init, func() tea.Msg { return size })
}

// startPersonaCmd starts a persona session off the UI goroutine; gateway
// initialization hits the network.
func (a App) startPersonaCmd(id persona.ID) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		return personaReadyMsg{err: ctrl.SelectPersona(context.Background(), id)}
	}
}

// sendCmd runs one send off the UI goroutine.
func (a App) sendCmd(text string) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		_, err := ctrl.SendMessage(context.Background(), text)
		return replyMsg{err: err}
	}
}

func (a App) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case pageAuth:
		a.auth, cmd = a.auth.Update(msg)
	case pagePersonas:
		a.personas, cmd = a.personas.Update(msg)
	case pageChat:
		a.chat, cmd = a.chat.Update(msg)
	}
	return a, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (a App) View() string {
	switch a.page {
	case pagePersonas:
		return a.personas.View()
	case pageChat:
		return a.chat.View()
	default:
		return a.auth.View()
	}
}
