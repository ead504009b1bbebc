// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package persona defines the static catalog of conversational personas.
//
// The catalog is configuration, not state: it is built once at process start,
// exposed read-only, and never persisted. Every persona carries a behavioral
// system instruction sent to the model gateway when a chat is initialized,
// with a shared language-style directive appended to each one.
package persona
