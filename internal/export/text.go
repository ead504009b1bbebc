// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
)

// =============================================================================
// PLAIN TEXT EXPORTER
// =============================================================================

// TextExporter exports transcripts as plain text.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// FileExtension implements Exporter.
func (e *TextExporter) FileExtension() string { return ".txt" }

// Export converts a transcript to plain text.
func (e *TextExporter) Export(t *Transcript) ([]byte, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Conversation: %s / %s\n", t.UserID, t.PersonaName))
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	for _, msg := range t.Messages {
		label := msg.Role.DisplayName()
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("[%s] %s:\n", formatShortTimestamp(msg.Timestamp), label))
		} else {
			sb.WriteString(label + ":\n")
		}
		sb.WriteString(msg.Text + "\n\n")
	}

	return []byte(sb.String()), nil
}
