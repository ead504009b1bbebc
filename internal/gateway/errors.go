// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes gateway errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeAuth covers rejected credentials and failed context setup.
	ErrTypeAuth
	// ErrTypeSend covers transport failures, quota errors, and malformed
	// responses on a user turn.
	ErrTypeSend
	// ErrTypeNotInitialized means Send was called before Initialize succeeded.
	ErrTypeNotInitialized
)

// Error represents an error from the model gateway.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches gateway errors by type so sentinels compare with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// ErrNotInitialized is returned by Send before a successful Initialize.
var ErrNotInitialized = &Error{Type: ErrTypeNotInitialized, Message: "chat session not initialized"}

// IsAuthError reports whether err is a credential or context-setup failure.
func IsAuthError(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Type == ErrTypeAuth
}

// IsSendError reports whether err is a transport or service failure.
func IsSendError(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Type == ErrTypeSend
}
