// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for persona-tui.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdUsers
	CmdPersonas
	CmdExport
	CmdDelete
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string
	DataDir    string
	Model      string
	Theme      string

	// Command-specific
	UserID    string
	PersonaID string
	Output    string
	Format    string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `persona-tui %s - chat with AI personas in your terminal

Talk to six distinct Gemini-backed personas. Profiles and chat histories
are stored locally under ~/.persona-tui.

Usage:
  persona-tui                         Start the TUI (default)
  persona-tui users                   List registered profiles
  persona-tui personas                List available personas
  persona-tui export <user> <persona> Export a chat transcript
    --format md|json|txt              Export format (default: md)
    --output FILE                     Write to FILE instead of stdout
  persona-tui delete <user> <persona> Delete a chat history
  persona-tui version                 Show version information
  persona-tui help                    Show this help

Global flags:
  --config FILE    Load configuration from FILE (.toml or .json)
  --data-dir DIR   Override the data directory
  --model NAME     Override the Gemini model
  --theme NAME     Force theme: dark, light, auto

Environment:
  PERSONA_DATA_DIR, PERSONA_MODEL, PERSONA_API_KEY, PERSONA_THEME
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsedArgs := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "users", "profiles":
		return CmdUsers, parsedArgs

	case "personas", "list":
		return CmdPersonas, parsedArgs

	case "export":
		parseConversationArgs(&parsedArgs, remaining)
		return CmdExport, parsedArgs

	case "delete", "rm":
		parseConversationArgs(&parsedArgs, remaining)
		return CmdDelete, parsedArgs

	case "version", "-V", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case "--data-dir":
			if i+1 < len(args) {
				i++
				parsedArgs.DataDir = args[i]
			}
		case "--model":
			if i+1 < len(args) {
				i++
				parsedArgs.Model = args[i]
			}
		case "--theme":
			if i+1 < len(args) {
				i++
				parsedArgs.Theme = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--data-dir="):
				parsedArgs.DataDir = strings.TrimPrefix(arg, "--data-dir=")
			case strings.HasPrefix(arg, "--model="):
				parsedArgs.Model = strings.TrimPrefix(arg, "--model=")
			case strings.HasPrefix(arg, "--theme="):
				parsedArgs.Theme = strings.TrimPrefix(arg, "--theme=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseConversationArgs parses <user> <persona> positionals plus --output.
func parseConversationArgs(args *Args, remaining []string) {
	var positional []string
	i := 0
	for i < len(remaining) {
		arg := remaining[i]
		switch {
		case arg == "--output" || arg == "-o":
			if i+1 < len(remaining) {
				i++
				args.Output = remaining[i]
			}
		case strings.HasPrefix(arg, "--output="):
			args.Output = strings.TrimPrefix(arg, "--output=")
		case arg == "--format" || arg == "-f":
			if i+1 < len(remaining) {
				i++
				args.Format = remaining[i]
			}
		case strings.HasPrefix(arg, "--format="):
			args.Format = strings.TrimPrefix(arg, "--format=")
		default:
			positional = append(positional, arg)
		}
		i++
	}
	if len(positional) > 0 {
		args.UserID = positional[0]
	}
	if len(positional) > 1 {
		args.PersonaID = positional[1]
	}
}

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// HandleVersion prints version information.
func HandleVersion(_ Args) {
	fmt.Printf("persona-tui %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  go:      %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
