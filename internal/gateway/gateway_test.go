// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendBeforeInitializeFailsDeterministically(t *testing.T) {
	g := New("")

	_, err := g.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInitialized)

	// Same failure every time, never a silent no-op.
	_, err = g.Send(context.Background(), "hello again")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitializeRejectsEmptyKey(t *testing.T) {
	g := New(DefaultModel)

	err := g.Initialize(context.Background(), "", "be nice", nil)
	require.Error(t, err)
	assert.True(t, IsAuthError(err), "empty credential must be an auth error")
}

func TestNewDefaultsModel(t *testing.T) {
	assert.Equal(t, DefaultModel, New("").model)
	assert.Equal(t, "gemini-2.0-pro", New("gemini-2.0-pro").model)
}

func TestErrorTypeMatching(t *testing.T) {
	sendErr := &Error{Type: ErrTypeSend, Message: "boom", Cause: errors.New("tcp reset")}
	authErr := &Error{Type: ErrTypeAuth, Message: "bad key"}

	assert.True(t, IsSendError(sendErr))
	assert.False(t, IsSendError(authErr))
	assert.True(t, IsAuthError(authErr))
	assert.False(t, IsAuthError(sendErr))

	// errors.Is matches by type through the Is hook.
	assert.True(t, errors.Is(sendErr, &Error{Type: ErrTypeSend}))
	assert.False(t, errors.Is(sendErr, ErrNotInitialized))

	// Cause is reachable through Unwrap.
	assert.EqualError(t, errors.Unwrap(sendErr), "tcp reset")
	assert.Equal(t, "boom: tcp reset", sendErr.Error())
}

func TestWrappedGatewayErrorsStillMatch(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), &Error{Type: ErrTypeAuth, Message: "bad key"})
	assert.True(t, IsAuthError(wrapped))
}
