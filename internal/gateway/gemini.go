// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/adxsh/persona-tui/internal/model"
)

// DefaultModel is the Gemini model used for all personas.
const DefaultModel = "gemini-2.5-flash"

// =============================================================================
// CLIENT INTERFACE
// =============================================================================

// Client is the surface the session controller talks to. The concrete Gemini
// gateway implements it; tests substitute a stub.
type Client interface {
	// Initialize creates a conversational context from a credential, a
	// persona system instruction, and prior history. It replaces any
	// previously initialized context.
	Initialize(ctx context.Context, apiKey, systemInstruction string, history []model.Message) error

	// Send submits one user turn and returns the generated reply text.
	// Calling Send before a successful Initialize fails with
	// ErrNotInitialized.
	Send(ctx context.Context, text string) (string, error)
}

// =============================================================================
// GEMINI GATEWAY
// =============================================================================

// Gateway talks to the Gemini API through google.golang.org/genai.
//
// Gateway is safe for concurrent use, though the session controller only ever
// has one send in flight.
type Gateway struct {
	mu      sync.Mutex
	model   string
	limiter *rate.Limiter
	chat    *genai.Chat
}

// New creates a gateway for the given model name. An empty name selects
// DefaultModel.
func New(modelName string) *Gateway {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Gateway{
		model: modelName,
		// Client-side pacing keeps bursts of sends inside free-tier quota.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Initialize creates the Gemini client and a chat session configured with the
// persona's system instruction, seeded with the persisted history so the
// model keeps conversational context across restarts.
func (g *Gateway) Initialize(ctx context.Context, apiKey, systemInstruction string, history []model.Message) error {
	if apiKey == "" {
		return &Error{Type: ErrTypeAuth, Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &Error{Type: ErrTypeAuth, Message: "failed to create Gemini client", Cause: err}
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == model.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	chat, err := client.Chats.Create(ctx, g.model, config, contents)
	if err != nil {
		return &Error{Type: ErrTypeAuth, Message: "failed to initialize chat session", Cause: err}
	}

	g.mu.Lock()
	g.chat = chat // replaces any previous session, no explicit teardown
	g.mu.Unlock()
	return nil
}

// Send submits one user turn. No automatic retry: the caller translates a
// failure into a user-visible fallback message.
func (g *Gateway) Send(ctx context.Context, text string) (string, error) {
	g.mu.Lock()
	chat := g.chat
	g.mu.Unlock()

	if chat == nil {
		return "", ErrNotInitialized
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", &Error{Type: ErrTypeSend, Message: "request canceled", Cause: err}
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", &Error{Type: ErrTypeSend, Message: "failed to generate response", Cause: err}
	}

	out := resp.Text()
	if out == "" {
		return "", &Error{Type: ErrTypeSend, Message: "empty response from model"}
	}
	return out, nil
}
