// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/storage"
)

func seedConversation(t *testing.T, dir, userID, personaID string, texts ...string) {
	t.Helper()
	chats, err := storage.NewChatStoreWithDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	msgs := make([]model.Message, 0, len(texts))
	for i, text := range texts {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleModel
		}
		msgs = append(msgs, model.NewMessage(role, text))
	}
	if err := chats.SaveConversation(userID, personaID, msgs); err != nil {
		t.Fatal(err)
	}
}

func TestHandleDeleteRemovesConversation(t *testing.T) {
	dir := t.TempDir()
	seedConversation(t, dir, "ava1", "Tutor", "teach me Go", "sure, chalo shuru karte hain")

	args := Args{DataDir: dir, UserID: "ava1", PersonaID: "Tutor"}
	if err := HandleDelete(args); err != nil {
		t.Fatalf("HandleDelete failed: %v", err)
	}

	chats, err := storage.NewChatStoreWithDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	msgs, err := chats.Conversation("ava1", "Tutor")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 0 {
		t.Errorf("conversation still has %d messages after delete", len(msgs))
	}
}

func TestHandleDeleteMissingConversation(t *testing.T) {
	args := Args{DataDir: t.TempDir(), UserID: "ava1", PersonaID: "Tutor"}
	if err := HandleDelete(args); err != nil {
		t.Errorf("deleting a missing conversation should not fail: %v", err)
	}
}

func TestHandleDeleteRejectsUnknownPersona(t *testing.T) {
	args := Args{DataDir: t.TempDir(), UserID: "ava1", PersonaID: "Wizard"}
	if err := HandleDelete(args); err == nil {
		t.Error("unknown persona should be rejected")
	}
}
