// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adxsh/persona-tui/internal/model"
)

// =============================================================================
// USER STORE TESTS
// =============================================================================

func TestUserStore_EmptyWhenNothingPersisted(t *testing.T) {
	store, err := NewUserStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	users, err := store.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty mapping, got %d entries", len(users))
	}
}

func TestUserStore_SaveAndLookup(t *testing.T) {
	store, err := NewUserStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	ava := model.UserProfile{Name: "Ava", UniqueID: "ava1", Age: 30, Gender: "Female", APIKey: "KEY"}
	if err := store.SaveUser(ava); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	users, err := store.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(users))
	}

	got, ok := store.Lookup("ava1")
	if !ok {
		t.Fatal("Lookup(ava1) not found")
	}
	if got != ava {
		t.Errorf("Lookup = %+v, want %+v", got, ava)
	}
}

func TestUserStore_SaveOverwrites(t *testing.T) {
	store, _ := NewUserStoreWithDir(t.TempDir())

	store.SaveUser(model.UserProfile{Name: "Ava", UniqueID: "ava1", APIKey: "OLD"})
	store.SaveUser(model.UserProfile{Name: "Ava", UniqueID: "ava1", APIKey: "NEW"})

	got, _ := store.Lookup("ava1")
	if got.APIKey != "NEW" {
		t.Errorf("APIKey = %q, want full overwrite to %q", got.APIKey, "NEW")
	}

	users, _ := store.Users()
	if len(users) != 1 {
		t.Errorf("expected one entry after overwrite, got %d", len(users))
	}
}

func TestUserStore_CorruptBlobFailsOpen(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewUserStoreWithDir(dir)

	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	users, err := store.Users()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("corrupt blob must yield a usable empty mapping, got %v", users)
	}

	// Saving through the corruption replaces the blob.
	if err := store.SaveUser(model.UserProfile{Name: "Ava", UniqueID: "ava1"}); err != nil {
		t.Fatalf("SaveUser over corrupt blob failed: %v", err)
	}
	if _, err := store.Users(); err != nil {
		t.Errorf("store still corrupt after save: %v", err)
	}
}

// =============================================================================
// CHAT STORE TESTS
// =============================================================================

func TestChatStore_EmptyWhenNothingPersisted(t *testing.T) {
	store, err := NewChatStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	msgs, err := store.Conversation("ava1", "Tutor")
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected empty sequence, got %d messages", len(msgs))
	}
}

func TestChatStore_RoundTrip(t *testing.T) {
	store, _ := NewChatStoreWithDir(t.TempDir())

	saved := []model.Message{
		model.NewUserMessage("Hello"),
		model.NewModelMessage("Haan, bolo! How can I help?"),
		model.NewUserMessage("Explain recursion"),
	}
	if err := store.SaveConversation("ava1", "Tutor", saved); err != nil {
		t.Fatalf("SaveConversation failed: %v", err)
	}

	loaded, err := store.Conversation("ava1", "Tutor")
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("loaded %d messages, want %d", len(loaded), len(saved))
	}

	for i := range saved {
		if loaded[i].ID != saved[i].ID {
			t.Errorf("msg %d: ID = %q, want %q", i, loaded[i].ID, saved[i].ID)
		}
		if loaded[i].Role != saved[i].Role {
			t.Errorf("msg %d: Role = %q, want %q", i, loaded[i].Role, saved[i].Role)
		}
		if loaded[i].Text != saved[i].Text {
			t.Errorf("msg %d: Text = %q, want %q", i, loaded[i].Text, saved[i].Text)
		}
		// Restored instants must match to the millisecond.
		if !loaded[i].Timestamp.Truncate(time.Millisecond).Equal(saved[i].Timestamp.Truncate(time.Millisecond)) {
			t.Errorf("msg %d: Timestamp = %v, want %v", i, loaded[i].Timestamp, saved[i].Timestamp)
		}
	}
}

func TestChatStore_SaveIsFullOverwrite(t *testing.T) {
	store, _ := NewChatStoreWithDir(t.TempDir())

	store.SaveConversation("ava1", "Tutor", []model.Message{
		model.NewUserMessage("one"),
		model.NewModelMessage("two"),
	})
	store.SaveConversation("ava1", "Tutor", []model.Message{
		model.NewUserMessage("only"),
	})

	msgs, _ := store.Conversation("ava1", "Tutor")
	if len(msgs) != 1 || msgs[0].Text != "only" {
		t.Errorf("expected full overwrite, got %d messages", len(msgs))
	}
}

func TestChatStore_DeleteConversation(t *testing.T) {
	store, _ := NewChatStoreWithDir(t.TempDir())

	store.SaveConversation("ava1", "Tutor", []model.Message{model.NewUserMessage("Hello")})
	store.SaveConversation("ava1", "Bestie", []model.Message{model.NewUserMessage("Yo")})

	if err := store.DeleteConversation("ava1", "Tutor"); err != nil {
		t.Fatalf("DeleteConversation failed: %v", err)
	}

	msgs, err := store.Conversation("ava1", "Tutor")
	if err != nil {
		t.Fatalf("Conversation after delete failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected empty sequence after delete, got %d", len(msgs))
	}

	// Other persona pairs are unaffected.
	other, _ := store.Conversation("ava1", "Bestie")
	if len(other) != 1 {
		t.Errorf("unrelated conversation was touched, got %d messages", len(other))
	}

	// Deleting again is not an error.
	if err := store.DeleteConversation("ava1", "Tutor"); err != nil {
		t.Errorf("repeat delete failed: %v", err)
	}
}

func TestChatStore_KeyIsolation(t *testing.T) {
	store, _ := NewChatStoreWithDir(t.TempDir())

	store.SaveConversation("ava1", "Tutor", []model.Message{model.NewUserMessage("a")})
	store.SaveConversation("bob2", "Tutor", []model.Message{model.NewUserMessage("b"), model.NewModelMessage("c")})

	msgs, _ := store.Conversation("ava1", "Tutor")
	if len(msgs) != 1 {
		t.Errorf("conversations for different users bled together")
	}
}

func TestChatStore_CorruptBlobFailsOpen(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewChatStoreWithDir(dir)

	os.WriteFile(filepath.Join(dir, "chat_ava1_Tutor.json"), []byte("garbage"), 0600)

	msgs, err := store.Conversation("ava1", "Tutor")
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("corrupt blob must yield empty sequence, got %d", len(msgs))
	}
}
