// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists user profiles and conversations as JSON blobs
// under the persona-tui data directory.
//
// Layout:
//   - users.json                      one blob holding uniqueId -> profile
//   - chat_<userId>_<personaId>.json  one blob per conversation
//
// Writes are atomic (temp file + fsync + rename). Reads fail open: a corrupt
// blob is treated as an empty store, with ErrCorrupt reported alongside so
// callers can surface it if they choose. Stores are not transactional; two
// processes writing the same key race with last-write-wins.
package storage
