// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	before := time.Now()
	msg := NewUserMessage("hello")
	after := time.Now()

	if msg.ID == "" {
		t.Error("expected non-empty ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Text != "hello" {
		t.Errorf("Text = %q, want %q", msg.Text, "hello")
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Error("Timestamp outside expected window")
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := NewModelMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestRoleDisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("RoleUser.DisplayName() = %q", got)
	}
	if got := RoleModel.DisplayName(); got != "Assistant" {
		t.Errorf("RoleModel.DisplayName() = %q", got)
	}
	if got := Role("weird").DisplayName(); got != "weird" {
		t.Errorf("unknown role DisplayName() = %q", got)
	}
}

func TestMessagePreview(t *testing.T) {
	msg := NewUserMessage("a very long message body that keeps going")
	if got := msg.Preview(10); got != "a very ..." {
		t.Errorf("Preview(10) = %q", got)
	}
	short := NewUserMessage("hi")
	if got := short.Preview(10); got != "hi" {
		t.Errorf("Preview(10) = %q, want %q", got, "hi")
	}
	multi := NewModelMessage("line one\nline two")
	if got := multi.Preview(40); got != "line one line two" {
		t.Errorf("Preview should flatten newlines, got %q", got)
	}
}

func TestConversationAppendOrder(t *testing.T) {
	conv := NewConversation("ava1", "Tutor")

	// Insertion order is preserved even if timestamps are out of order.
	first := NewUserMessage("first")
	first.Timestamp = time.Now().Add(time.Hour)
	conv.Append(first)
	conv.AppendModel("second")

	if conv.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", conv.Len())
	}
	if conv.Messages[0].Text != "first" || conv.Messages[1].Text != "second" {
		t.Error("messages not in insertion order")
	}

	last, ok := conv.Last()
	if !ok || last.Text != "second" {
		t.Errorf("Last() = %q, %v", last.Text, ok)
	}
}

func TestConversationClear(t *testing.T) {
	conv := NewConversation("ava1", "Tutor")
	conv.AppendUser("hello")
	conv.Clear()

	if conv.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", conv.Len())
	}
	if _, ok := conv.Last(); ok {
		t.Error("Last() after Clear should report empty")
	}
	if !conv.UpdatedAt().IsZero() {
		t.Error("UpdatedAt() after Clear should be zero")
	}
}
