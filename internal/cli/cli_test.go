// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"persona-tui"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseDefaultsToTUI(t *testing.T) {
	setArgs(t)
	cmd, _ := Parse()
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %v", cmd)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	setArgs(t, "--data-dir", "/tmp/x", "--model=gemini-2.5-pro", "--theme", "dark")
	cmd, args := Parse()
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %v", cmd)
	}
	if args.DataDir != "/tmp/x" {
		t.Errorf("DataDir = %q", args.DataDir)
	}
	if args.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", args.Model)
	}
	if args.Theme != "dark" {
		t.Errorf("Theme = %q", args.Theme)
	}
}

func TestParseConfigFlag(t *testing.T) {
	setArgs(t, "--config", "/tmp/alt.toml")
	cmd, args := Parse()
	if cmd != CmdTUI {
		t.Fatalf("expected CmdTUI, got %v", cmd)
	}
	if args.ConfigPath != "/tmp/alt.toml" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}

	setArgs(t, "--config=/tmp/alt.json", "users")
	cmd, args = Parse()
	if cmd != CmdUsers {
		t.Fatalf("expected CmdUsers, got %v", cmd)
	}
	if args.ConfigPath != "/tmp/alt.json" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}
}

func TestParseExport(t *testing.T) {
	setArgs(t, "export", "ava1", "Tutor", "--output", "chat.md")
	cmd, args := Parse()
	if cmd != CmdExport {
		t.Fatalf("expected CmdExport, got %v", cmd)
	}
	if args.UserID != "ava1" || args.PersonaID != "Tutor" {
		t.Errorf("positionals = %q %q", args.UserID, args.PersonaID)
	}
	if args.Output != "chat.md" {
		t.Errorf("Output = %q", args.Output)
	}
}

func TestParseDeleteAlias(t *testing.T) {
	setArgs(t, "rm", "ava1", "Bestie")
	cmd, args := Parse()
	if cmd != CmdDelete {
		t.Fatalf("expected CmdDelete, got %v", cmd)
	}
	if args.UserID != "ava1" || args.PersonaID != "Bestie" {
		t.Errorf("positionals = %q %q", args.UserID, args.PersonaID)
	}
}

func TestParseUnknownCommandFallsBackToHelp(t *testing.T) {
	setArgs(t, "frobnicate")
	cmd, _ := Parse()
	if cmd != CmdHelp {
		t.Errorf("expected CmdHelp, got %v", cmd)
	}
}

func TestParseVersion(t *testing.T) {
	setArgs(t, "version")
	cmd, _ := Parse()
	if cmd != CmdVersion {
		t.Errorf("expected CmdVersion, got %v", cmd)
	}
}
