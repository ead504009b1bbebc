// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/adxsh/persona-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports transcripts as machine-readable JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

// FileExtension implements Exporter.
func (e *JSONExporter) FileExtension() string { return ".json" }

// jsonDocument is the on-disk shape of a JSON export.
type jsonDocument struct {
	UserID     string          `json:"userId"`
	PersonaID  string          `json:"personaId"`
	Persona    string          `json:"persona"`
	ExportedAt time.Time       `json:"exportedAt"`
	Messages   []model.Message `json:"messages"`
}

// Export converts a transcript to indented JSON.
func (e *JSONExporter) Export(t *Transcript) ([]byte, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	doc := jsonDocument{
		UserID:     t.UserID,
		PersonaID:  t.PersonaID,
		Persona:    t.PersonaName,
		ExportedAt: time.Now(),
		Messages:   t.Messages,
	}
	return json.MarshalIndent(doc, "", "  ")
}
