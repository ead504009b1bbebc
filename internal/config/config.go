// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/adxsh/persona-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete persona-tui configuration.
type Config struct {
	// DataDir overrides the data directory (empty = ~/.persona-tui).
	DataDir string `toml:"data_dir" json:"data_dir"`

	// Gemini configuration
	Gemini GeminiConfig `toml:"gemini" json:"gemini"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// GeminiConfig contains Gemini API settings.
type GeminiConfig struct {
	// Model is the Gemini model identifier used for chat sessions.
	Model string `toml:"model" json:"model"`
	// APIKey, when set, pre-fills the API key field on registration.
	// Per-user keys stored with the profile always win.
	APIKey string `toml:"api_key" json:"api_key"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// ShowTimestamps displays message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// CompactMode uses a more compact chat layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: false,
			CompactMode:    false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the persona-tui configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".persona-tui"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Config files carry API keys and must be 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	cfg2, err := finish(cfg)
	if err != nil {
		return nil, err
	}
	return cfg2, loadErr
}

// finish applies env overrides, defaults, and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. JSON files are detected by extension; everything else is TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration back to its default location. TOML is the
// primary format; when the user keeps only a JSON config, that file is
// updated in place instead of growing a second one.
func Save(cfg *Config) error {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(tomlPath); os.IsNotExist(statErr) {
		if jsonPath, jerr := ConfigPathJSON(); jerr == nil {
			if _, statErr := os.Stat(jsonPath); statErr == nil {
				return SaveJSON(cfg, jsonPath)
			}
		}
	}
	return SaveTOML(cfg, tomlPath)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# persona-tui configuration file")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file atomically with 0600
// permissions.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		return ValidationError{Field: "gemini.model", Message: "model cannot be empty"}
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		}
	}
	return nil
}

// SetDefaults fills in any missing values with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Gemini.Model == "" {
		c.Gemini.Model = defaults.Gemini.Model
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - PERSONA_DATA_DIR: overrides data_dir
//   - PERSONA_MODEL: overrides gemini.model
//   - PERSONA_API_KEY: overrides gemini.api_key
//   - PERSONA_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("PERSONA_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if model := os.Getenv("PERSONA_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if key := os.Getenv("PERSONA_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if theme := os.Getenv("PERSONA_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// String returns a string representation of the config for debugging.
// The API key is redacted so debug output never leaks it.
func (c *Config) String() string {
	safe := *c
	if safe.Gemini.APIKey != "" {
		safe.Gemini.APIKey = "[REDACTED]"
	}
	data, _ := json.MarshalIndent(safe, "", "  ")
	return string(data)
}
