// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package persona

import (
	"strings"
	"testing"
)

func TestListStableOrder(t *testing.T) {
	first := List()
	second := List()

	if len(first) != 6 {
		t.Fatalf("List() returned %d personas, want 6", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("order not stable at index %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID != Friend || first[5].ID != Comedian {
		t.Errorf("unexpected order: first=%q last=%q", first[0].ID, first[5].ID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	mutated := List()
	mutated[0].Name = "Hacked"

	if List()[0].Name == "Hacked" {
		t.Error("List() exposes the underlying registry")
	}
}

func TestByID(t *testing.T) {
	p, err := ByID(Tutor)
	if err != nil {
		t.Fatalf("ByID(Tutor) failed: %v", err)
	}
	if p.Name != "Tutor" {
		t.Errorf("Name = %q, want %q", p.Name, "Tutor")
	}

	if _, err := ByID("Nonexistent"); err == nil {
		t.Error("ByID with unknown id should fail")
	}
}

func TestSystemInstructionsCarryLanguageDirective(t *testing.T) {
	for _, p := range List() {
		if !strings.Contains(p.SystemInstruction, "Hinglish") {
			t.Errorf("persona %q missing shared language directive", p.ID)
		}
		if !strings.HasSuffix(p.SystemInstruction, hinglishInstruction) {
			t.Errorf("persona %q: directive must be appended at the end", p.ID)
		}
	}
}

func TestIconFor(t *testing.T) {
	for _, p := range List() {
		if IconFor(p.Icon) == "•" {
			t.Errorf("persona %q has no dedicated glyph for icon key %q", p.ID, p.Icon)
		}
	}
	if IconFor("no-such-key") != "•" {
		t.Error("unknown icon key should fall back to the neutral glyph")
	}
}
