// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides conversation export functionality for persona-tui.
// Supports exporting transcripts to Markdown, JSON, and plain text.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/adxsh/persona-tui/internal/model"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Transcript is a conversation prepared for export.
type Transcript struct {
	UserID      string
	PersonaID   string
	PersonaName string
	Messages    []model.Message
}

// Exporter defines the interface for transcript exporters.
type Exporter interface {
	// Export converts a transcript to the target format.
	Export(t *Transcript) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md").
	FileExtension() string
}

// =============================================================================
// OPTIONS AND FORMAT SELECTION
// =============================================================================

// Options configures export behavior.
type Options struct {
	// IncludeMetadata includes a metadata header (participants, dates,
	// message count).
	IncludeMetadata bool

	// IncludeTimestamps includes per-message timestamps.
	IncludeTimestamps bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		IncludeMetadata:   true,
		IncludeTimestamps: true,
	}
}

// ForFormat returns the exporter for a format name: "md", "markdown",
// "json", or "txt".
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", "md", "markdown":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(), nil
	case "txt", "text":
		return NewTextExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want md, json, or txt)", format)
	}
}

// validate rejects transcripts that cannot produce a meaningful document.
func validate(t *Transcript) error {
	if t == nil {
		return fmt.Errorf("transcript is nil")
	}
	if len(t.Messages) == 0 {
		return fmt.Errorf("transcript has no messages")
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// formatShortTimestamp formats a timestamp for inline display.
func formatShortTimestamp(t time.Time) string {
	return t.Format("15:04")
}
