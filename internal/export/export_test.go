// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/adxsh/persona-tui/internal/model"
)

func sampleTranscript() *Transcript {
	return &Transcript{
		UserID:      "ava1",
		PersonaID:   "Tutor",
		PersonaName: "Tutor",
		Messages: []model.Message{
			model.NewUserMessage("Hello"),
			model.NewModelMessage("Namaste! Kaise ho?"),
		},
	}
}

func TestMarkdownExport(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"# Conversation ava1 / Tutor",
		"**You**",
		"**Assistant**",
		"Namaste! Kaise ho?",
		"- **Messages**: 2",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownExportWithoutMetadata(t *testing.T) {
	opts := &Options{IncludeMetadata: false, IncludeTimestamps: false}
	out, err := NewMarkdownExporter(opts).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.Contains(string(out), "**Exported**") {
		t.Error("metadata present despite IncludeMetadata=false")
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	out, err := NewJSONExporter().Export(sampleTranscript())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.UserID != "ava1" || doc.PersonaID != "Tutor" {
		t.Errorf("identity fields = %q %q", doc.UserID, doc.PersonaID)
	}
	if len(doc.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(doc.Messages))
	}
	if doc.Messages[1].Role != model.RoleModel {
		t.Errorf("second message role = %q", doc.Messages[1].Role)
	}
}

func TestTextExport(t *testing.T) {
	out, err := NewTextExporter(nil).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "Conversation: ava1 / Tutor") {
		t.Error("missing header")
	}
	if !strings.Contains(doc, "You:") && !strings.Contains(doc, "] You:") {
		t.Error("missing user label")
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"", ".md", false},
		{"md", ".md", false},
		{"markdown", ".md", false},
		{"JSON", ".json", false},
		{"txt", ".txt", false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		exp, err := ForFormat(tt.format, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q) should fail", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q) failed: %v", tt.format, err)
			continue
		}
		if exp.FileExtension() != tt.wantExt {
			t.Errorf("ForFormat(%q) extension = %q, want %q", tt.format, exp.FileExtension(), tt.wantExt)
		}
	}
}

func TestExportRejectsEmptyTranscript(t *testing.T) {
	empty := &Transcript{UserID: "ava1", PersonaID: "Tutor"}
	if _, err := NewMarkdownExporter(nil).Export(empty); err == nil {
		t.Error("empty transcript should fail")
	}
	if _, err := NewJSONExporter().Export(nil); err == nil {
		t.Error("nil transcript should fail")
	}
}
