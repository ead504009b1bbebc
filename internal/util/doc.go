// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for persona-tui: atomic file
// writes for durable persistence and rune/width aware string utilities for
// terminal rendering.
package util
