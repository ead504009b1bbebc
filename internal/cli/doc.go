// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line argument parsing and non-interactive
// command handlers for persona-tui.
package cli
