// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/util"
)

// chatPrefix is the fixed filename prefix for conversation blobs.
const chatPrefix = "chat_"

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore persists one conversation per (user, persona) pair.
type ChatStore struct {
	// BaseDir is the data directory, default ~/.persona-tui
	BaseDir string
}

// NewChatStore creates a chat store rooted at the default data directory.
func NewChatStore() (*ChatStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewChatStoreWithDir(filepath.Join(homeDir, ".persona-tui"))
}

// NewChatStoreWithDir creates a chat store rooted at a custom directory.
func NewChatStoreWithDir(baseDir string) (*ChatStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &ChatStore{BaseDir: baseDir}, nil
}

// Conversation returns the persisted message sequence for the pair, in
// insertion order. A missing blob yields an empty slice; a corrupt blob
// yields an empty slice with ErrCorrupt.
//
// Timestamps round-trip through RFC 3339 with sub-second precision, so the
// restored instants equal the saved ones to the millisecond and beyond.
func (s *ChatStore) Conversation(userID, personaID string) ([]model.Message, error) {
	data, err := os.ReadFile(s.filePath(userID, personaID))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Message{}, nil
		}
		return []model.Message{}, &StoreError{Message: "failed to read conversation", Cause: err}
	}

	var msgs []model.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return []model.Message{}, ErrCorrupt
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return msgs, nil
}

// SaveConversation overwrites the persisted sequence for the pair with msgs.
// This is a full overwrite, not an append; the caller supplies the complete
// history each time.
func (s *ChatStore) SaveConversation(userID, personaID string, msgs []model.Message) error {
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return &StoreError{Message: "failed to encode conversation", Cause: err}
	}
	if err := util.AtomicWriteFile(s.filePath(userID, personaID), data, 0600); err != nil {
		return &StoreError{Message: "failed to write conversation", Cause: err}
	}
	return nil
}

// DeleteConversation removes the persisted entry entirely. Deleting a
// conversation that was never saved is not an error.
func (s *ChatStore) DeleteConversation(userID, personaID string) error {
	if err := os.Remove(s.filePath(userID, personaID)); err != nil && !os.IsNotExist(err) {
		return &StoreError{Message: "failed to delete conversation", Cause: err}
	}
	return nil
}

// filePath derives the blob path from the fixed prefix and the pair key.
func (s *ChatStore) filePath(userID, personaID string) string {
	return filepath.Join(s.BaseDir, chatPrefix+userID+"_"+personaID+".json")
}

