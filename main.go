// persona-tui - chat with AI personas in your terminal.
//
// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adxsh/persona-tui/internal/cli"
	"github.com/adxsh/persona-tui/internal/config"
	"github.com/adxsh/persona-tui/internal/gateway"
	"github.com/adxsh/persona-tui/internal/session"
	"github.com/adxsh/persona-tui/internal/storage"
	"github.com/adxsh/persona-tui/internal/ui"
	"github.com/adxsh/persona-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdUsers:
		exitOnError(cli.HandleUsers(args))
	case cli.CmdPersonas:
		exitOnError(cli.HandlePersonas(args))
	case cli.CmdExport:
		exitOnError(cli.HandleExport(args))
	case cli.CmdDelete:
		exitOnError(cli.HandleDelete(args))
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the TUI interface.
func runTUI(args cli.Args) {
	cfg, firstRun, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}
	if firstRun {
		// Write the defaults so there is a file to edit.
		if err := config.EnsureConfigDir(); err == nil {
			if err := config.Save(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", err)
			}
		}
	}

	// CLI args override config
	if args.DataDir != "" {
		cfg.DataDir = args.DataDir
	}
	if args.Model != "" {
		cfg.Gemini.Model = args.Model
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}

	// Debug logging goes to a file; stdout belongs to the TUI.
	if os.Getenv("PERSONA_DEBUG") != "" {
		logPath := "persona-debug.log"
		if dir, err := config.ConfigDir(); err == nil {
			logPath = filepath.Join(dir, "debug.log")
		}
		f, err := tea.LogToFile(logPath, "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		} else {
			defer f.Close()
		}
	}

	users, chats, err := openStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := styles.New(cfg.UI.Theme)
	gw := gateway.New(cfg.Gemini.Model)
	ctrl := session.NewController(users, chats, gw)

	p := tea.NewProgram(
		ui.NewApp(theme, ctrl, cfg),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration. An explicit --config path wins;
// the default search also reports whether no config file existed yet.
func loadConfig(args cli.Args) (*config.Config, bool, error) {
	if args.ConfigPath != "" {
		cfg, err := config.LoadFromPath(args.ConfigPath)
		return cfg, false, err
	}

	firstRun := true
	if path, err := config.ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			firstRun = false
		}
	}
	if path, err := config.ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			firstRun = false
		}
	}

	cfg, err := config.Load()
	return cfg, firstRun && err == nil, err
}

func openStores(cfg *config.Config) (*storage.UserStore, *storage.ChatStore, error) {
	if cfg.DataDir != "" {
		users, err := storage.NewUserStoreWithDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		chats, err := storage.NewChatStoreWithDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return users, chats, nil
	}
	users, err := storage.NewUserStore()
	if err != nil {
		return nil, nil, err
	}
	chats, err := storage.NewChatStore()
	if err != nil {
		return nil, nil, err
	}
	return users, chats, nil
}
