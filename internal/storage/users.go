// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/util"
)

// usersFile is the single blob holding the whole identity mapping.
const usersFile = "users.json"

// =============================================================================
// USER STORE
// =============================================================================

// UserStore persists user profiles keyed by their unique identifier.
// There is no deletion operation; profiles go away only with the data dir.
type UserStore struct {
	// BaseDir is the data directory, default ~/.persona-tui
	BaseDir string
}

// NewUserStore creates a user store rooted at the default data directory.
func NewUserStore() (*UserStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewUserStoreWithDir(filepath.Join(homeDir, ".persona-tui"))
}

// NewUserStoreWithDir creates a user store rooted at a custom directory.
func NewUserStoreWithDir(baseDir string) (*UserStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &UserStore{BaseDir: baseDir}, nil
}

// Users returns the full mapping of uniqueId -> profile. A missing blob
// yields an empty map; an unparseable blob also yields an empty map with
// ErrCorrupt so the caller can tell the two apart.
func (s *UserStore) Users() (map[string]model.UserProfile, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]model.UserProfile{}, nil
		}
		return map[string]model.UserProfile{}, &StoreError{Message: "failed to read users", Cause: err}
	}

	var users map[string]model.UserProfile
	if err := json.Unmarshal(data, &users); err != nil {
		return map[string]model.UserProfile{}, ErrCorrupt
	}
	if users == nil {
		users = map[string]model.UserProfile{}
	}
	return users, nil
}

// Lookup returns the profile stored under uniqueID and whether it exists.
func (s *UserStore) Lookup(uniqueID string) (model.UserProfile, bool) {
	users, _ := s.Users()
	profile, ok := users[uniqueID]
	return profile, ok
}

// SaveUser inserts or overwrites the entry for profile.UniqueID. Full
// overwrite, no merge. Profiles hold the API key, so the blob is 0600.
func (s *UserStore) SaveUser(profile model.UserProfile) error {
	users, err := s.Users()
	if err != nil && err != ErrCorrupt {
		return err
	}

	users[profile.UniqueID] = profile

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return &StoreError{Message: "failed to encode users", Cause: err}
	}
	if err := util.AtomicWriteFile(s.filePath(), data, 0600); err != nil {
		return &StoreError{Message: "failed to write users", Cause: err}
	}
	return nil
}

// filePath returns the path of the identity blob.
func (s *UserStore) filePath() string {
	return filepath.Join(s.BaseDir, usersFile)
}
