// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the message history for one (user, persona) pair.
// Conversations for different personas under the same user are fully
// independent and never merged.
type Conversation struct {
	UserID    string    `json:"user_id"`
	PersonaID string    `json:"persona_id"`
	Messages  []Message `json:"messages"`
}

// NewConversation creates an empty conversation for the given pair.
func NewConversation(userID, personaID string) *Conversation {
	return &Conversation{
		UserID:    userID,
		PersonaID: personaID,
		Messages:  make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the history.
func (c *Conversation) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// AppendUser creates, appends, and returns a user message.
func (c *Conversation) AppendUser(text string) Message {
	msg := NewUserMessage(text)
	c.Append(msg)
	return msg
}

// AppendModel creates, appends, and returns a model message.
func (c *Conversation) AppendModel(text string) Message {
	msg := NewModelMessage(text)
	c.Append(msg)
	return msg
}

// Last returns the most recent message and true, or a zero Message and false
// when the conversation is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Clear discards all messages.
func (c *Conversation) Clear() {
	c.Messages = c.Messages[:0]
}

// UpdatedAt returns the timestamp of the newest message, or the zero time for
// an empty conversation.
func (c *Conversation) UpdatedAt() time.Time {
	if last, ok := c.Last(); ok {
		return last.Timestamp
	}
	return time.Time{}
}

// =============================================================================
// USER PROFILE
// =============================================================================

// UserProfile is a locally registered user. UniqueID is the sole lookup key;
// its format is not validated. The API key is an opaque credential for the
// model gateway and is stored as-is.
type UserProfile struct {
	Name     string `json:"name"`
	UniqueID string `json:"uniqueId"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	APIKey   string `json:"apiKey"`
}
