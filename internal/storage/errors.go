// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// =============================================================================
// ERRORS
// =============================================================================

// StoreError represents a storage-related error.
// It implements the error interface and can be compared using errors.Is.
type StoreError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is support for comparing store errors by message.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ErrCorrupt is reported when a persisted blob cannot be parsed. Loads that
// hit it still return usable empty state (fail open); the error is
// informational. Use errors.Is(err, ErrCorrupt) to check.
var ErrCorrupt = &StoreError{Message: "persisted data is corrupt"}
