// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "errors"

// =============================================================================
// ERRORS
// =============================================================================

// ValidationError is a recoverable user-input failure: a missing registration
// field, a duplicate unique id, an unknown login id. It never changes state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err is a user-input failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrBusy is returned when a send is attempted while another send is
	// already in flight. Attempts are refused at the boundary, never queued.
	ErrBusy = errors.New("a send is already in flight")

	// ErrInvalidState is returned when an operation is invoked from a state
	// that does not allow it.
	ErrInvalidState = errors.New("operation not allowed in current state")
)
