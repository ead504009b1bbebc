// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/adxsh/persona-tui/internal/gateway"
	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/storage"
)

// FallbackNotice is appended as a model message when a send fails. The
// failure is absorbed into the conversation instead of being surfaced as a
// transient alert.
const FallbackNotice = "I'm having trouble connecting to my neural core right now. Please check your API key or internet connection."

// =============================================================================
// STATE
// =============================================================================

// State is the session lifecycle state.
type State int

const (
	// StateUnauthenticated has no user bound.
	StateUnauthenticated State = iota
	// StatePersonaPending has a user bound but no persona.
	StatePersonaPending
	// StateConversing has a user and persona bound with live history.
	StateConversing
)

// String returns the state name for logs and errors.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StatePersonaPending:
		return "persona-pending"
	case StateConversing:
		return "conversing"
	default:
		return "unknown"
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller drives the session lifecycle. All mutations go through its
// methods; the mutex exists because sends complete on goroutines spawned by
// the UI runtime while key events keep arriving.
type Controller struct {
	mu sync.Mutex

	users *storage.UserStore
	chats *storage.ChatStore
	gw    gateway.Client

	state   State
	user    *model.UserProfile
	persona *persona.Config
	conv    *model.Conversation

	// Concurrency guard: exactly one outbound request per conversation.
	inFlight   bool
	sendCancel context.CancelFunc
}

// NewController wires the controller to its stores and gateway.
func NewController(users *storage.UserStore, chats *storage.ChatStore, gw gateway.Client) *Controller {
	return &Controller{
		users: users,
		chats: chats,
		gw:    gw,
		state: StateUnauthenticated,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User returns the bound user profile, or false when unauthenticated.
func (c *Controller) User() (model.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return model.UserProfile{}, false
	}
	return *c.user, true
}

// Persona returns the bound persona, or false outside Conversing.
func (c *Controller) Persona() (persona.Config, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.persona == nil {
		return persona.Config{}, false
	}
	return *c.persona, true
}

// Messages returns a copy of the active conversation history.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conv == nil {
		return []model.Message{}
	}
	out := make([]model.Message, len(c.conv.Messages))
	copy(out, c.conv.Messages)
	return out
}

// IsProcessing reports whether a send is in flight.
func (c *Controller) IsProcessing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// KnownUsers returns all registered profiles, for the login screen's
// existing-user picker. Corruption fails open to an empty mapping.
func (c *Controller) KnownUsers() map[string]model.UserProfile {
	users, _ := c.users.Users()
	return users
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// Login binds a stored user by unique id and moves to PersonaPending.
// An unknown id is a non-fatal ValidationError; state is unchanged.
func (c *Controller) Login(uniqueID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUnauthenticated {
		return ErrInvalidState
	}

	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return &ValidationError{Field: "uniqueId", Message: "unique id is required"}
	}

	profile, ok := c.users.Lookup(uniqueID)
	if !ok {
		return &ValidationError{Field: "uniqueId", Message: "user not found"}
	}

	c.user = &profile
	c.state = StatePersonaPending
	return nil
}

// Register validates and persists a new profile, binds it, and moves to
// PersonaPending. A duplicate unique id is rejected without touching the
// stored profile.
func (c *Controller) Register(profile model.UserProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUnauthenticated {
		return ErrInvalidState
	}

	profile.Name = strings.TrimSpace(profile.Name)
	profile.UniqueID = strings.TrimSpace(profile.UniqueID)
	switch {
	case profile.Name == "":
		return &ValidationError{Field: "name", Message: "name is required"}
	case profile.UniqueID == "":
		return &ValidationError{Field: "uniqueId", Message: "unique id is required"}
	case profile.APIKey == "":
		return &ValidationError{Field: "apiKey", Message: "API key is required"}
	case profile.Age < 0:
		return &ValidationError{Field: "age", Message: "age cannot be negative"}
	}

	if _, exists := c.users.Lookup(profile.UniqueID); exists {
		return &ValidationError{Field: "uniqueId", Message: "unique id already taken"}
	}

	if err := c.users.SaveUser(profile); err != nil {
		return err
	}

	c.user = &profile
	c.state = StatePersonaPending
	return nil
}

// Logout clears the bound user and returns to Unauthenticated. A send still
// in flight is canceled; its user message stays persisted, no reply lands.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelInFlightLocked()
	c.user = nil
	c.persona = nil
	c.conv = nil
	c.state = StateUnauthenticated
}

// =============================================================================
// PERSONA SELECTION
// =============================================================================

// SelectPersona initializes the gateway for the chosen persona and, on
// success, loads the persisted history and enters Conversing. On failure the
// session stays in PersonaPending; the caller may retry with another persona
// or credential.
func (c *Controller) SelectPersona(ctx context.Context, id persona.ID) error {
	c.mu.Lock()
	if c.state != StatePersonaPending {
		c.mu.Unlock()
		return ErrInvalidState
	}
	user := *c.user
	c.mu.Unlock()

	p, err := persona.ByID(id)
	if err != nil {
		return err
	}

	// History loads before gateway init so the model session is seeded with
	// prior turns. Corruption fails open to an empty history.
	history, _ := c.chats.Conversation(user.UniqueID, string(p.ID))

	if err := c.gw.Initialize(ctx, user.APIKey, p.SystemInstruction, history); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePersonaPending {
		// Logged out while initializing; drop the result.
		return ErrInvalidState
	}
	c.persona = &p
	conv := model.NewConversation(user.UniqueID, string(p.ID))
	conv.Messages = history
	c.conv = conv
	c.state = StateConversing
	return nil
}

// Back unbinds the persona and returns to PersonaPending. The in-memory
// history is discarded; it is already durable from prior saves. A send still
// in flight is canceled.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConversing {
		return
	}
	c.cancelInFlightLocked()
	c.persona = nil
	c.conv = nil
	c.state = StatePersonaPending
}

// =============================================================================
// MESSAGE EXCHANGE
// =============================================================================

// SendMessage runs one user turn:
//
//  1. Append the user message and persist the full history before the
//     network round trip (durability precedes the request).
//  2. Mark the in-flight flag; a second send meanwhile gets ErrBusy.
//  3. Invoke the gateway.
//  4. On success append and persist the model reply; on failure append and
//     persist FallbackNotice instead.
//  5. Clear the in-flight flag on every path.
//
// Gateway failure is not an error to the caller: it is absorbed into the
// conversation. A navigation (Back/Logout) while the call is pending cancels
// it; the user message stays, no reply is appended.
func (c *Controller) SendMessage(ctx context.Context, text string) (model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, &ValidationError{Field: "message", Message: "message is empty"}
	}

	c.mu.Lock()
	if c.state != StateConversing {
		c.mu.Unlock()
		return model.Message{}, ErrInvalidState
	}
	if c.inFlight {
		c.mu.Unlock()
		return model.Message{}, ErrBusy
	}

	conv := c.conv
	userMsg := conv.AppendUser(text)
	c.inFlight = true
	sendCtx, cancel := context.WithCancel(ctx)
	c.sendCancel = cancel
	c.mu.Unlock()

	// Persist the user turn immediately; a crash mid-request keeps it.
	c.persist(conv)

	reply, sendErr := c.gw.Send(sendCtx, text)
	// Read the cancellation state before releasing the context; after
	// cancel() the Err() is Canceled on every path.
	canceled := sendCtx.Err() != nil
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.sendCancel = nil

	if c.conv != conv {
		// Navigated away mid-send. The user message is already durable;
		// the reply (or fallback) is dropped.
		return userMsg, nil
	}

	if sendErr != nil {
		if canceled {
			// Canceled, not failed: no fallback message.
			return userMsg, nil
		}
		msg := conv.AppendModel(FallbackNotice)
		c.persist(conv)
		return msg, nil
	}

	msg := conv.AppendModel(reply)
	c.persist(conv)
	return msg, nil
}

// DeleteConversation clears the persisted and in-memory history for the
// active pair. The session stays in Conversing.
func (c *Controller) DeleteConversation() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConversing {
		return ErrInvalidState
	}
	if c.inFlight {
		return ErrBusy
	}
	if err := c.chats.DeleteConversation(c.conv.UserID, c.conv.PersonaID); err != nil {
		return err
	}
	c.conv.Clear()
	return nil
}

// persist writes the conversation history. The in-memory copy stays the
// source of truth while the session lives, so a write failure is logged and
// the turn continues; the next save retries the full history.
func (c *Controller) persist(conv *model.Conversation) {
	if err := c.chats.SaveConversation(conv.UserID, conv.PersonaID, conv.Messages); err != nil {
		log.Printf("session: persist %s/%s failed: %v", conv.UserID, conv.PersonaID, err)
	}
}

// cancelInFlightLocked aborts a pending send. Caller holds c.mu.
func (c *Controller) cancelInFlightLocked() {
	if c.sendCancel != nil {
		c.sendCancel()
		c.sendCancel = nil
	}
}
