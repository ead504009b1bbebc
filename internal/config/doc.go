// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for persona-tui.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.persona-tui/config.toml
//   - ~/.persona-tui/config.json
//   - Built-in defaults
package config
