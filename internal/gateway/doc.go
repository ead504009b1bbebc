// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gateway wraps the Gemini API behind a small chat-session surface.
//
// A Gateway owns at most one live conversational context; initializing again
// replaces the previous one. Instances are independent, so the session
// controller owns its gateway rather than sharing process-wide state.
package gateway
