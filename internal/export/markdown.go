// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown format.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// FileExtension implements Exporter.
func (e *MarkdownExporter) FileExtension() string { return ".md" }

// Export converts a transcript to Markdown format.
func (e *MarkdownExporter) Export(t *Transcript) ([]byte, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Conversation %s / %s\n\n", t.UserID, t.PersonaName))

	if e.options.IncludeMetadata {
		first := t.Messages[0].Timestamp
		last := t.Messages[len(t.Messages)-1].Timestamp
		sb.WriteString(fmt.Sprintf("- **Persona**: %s\n", t.PersonaName))
		sb.WriteString(fmt.Sprintf("- **Started**: %s\n", formatTimestamp(first)))
		sb.WriteString(fmt.Sprintf("- **Last message**: %s\n", formatTimestamp(last)))
		sb.WriteString(fmt.Sprintf("- **Messages**: %d\n", len(t.Messages)))
		sb.WriteString(fmt.Sprintf("- **Exported**: %s\n", time.Now().Format(time.RFC3339)))
		sb.WriteString("\n---\n\n")
	}

	for i, msg := range t.Messages {
		label := "**" + msg.Role.DisplayName() + "**"
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("%s (%s):\n\n", label, formatShortTimestamp(msg.Timestamp)))
		} else {
			sb.WriteString(label + ":\n\n")
		}
		sb.WriteString(msg.Text)
		sb.WriteString("\n\n")
		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return []byte(sb.String()), nil
}
