// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the conversation session lifecycle: the state
// machine that binds a user, a persona, and a message history together.
//
// States move Unauthenticated -> PersonaPending -> Conversing, with Logout
// and Back walking the other way. One Controller owns the in-memory copy of
// the active conversation; the chat store owns the durable copy and is the
// source of truth across restarts.
package session
