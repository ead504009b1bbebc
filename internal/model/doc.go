// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat: user profiles,
// messages, and per-persona conversations.
//
// A Conversation is the ordered message history for one (user, persona)
// pair. Messages are append-only and keep their insertion order; they are
// never re-sorted by timestamp.
package model
