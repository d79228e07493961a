// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for gridcopy.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.gridcopy/config.toml
//   - ~/.gridcopy/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/gridcopy/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete gridcopy configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Export configuration
	Export ExportConfig `toml:"export" json:"export"`

	// Grid display configuration
	Grid GridConfig `toml:"grid" json:"grid"`

	// Data source configuration
	Data DataConfig `toml:"data" json:"data"`
}

// ExportConfig controls CSV downloads and clipboard copies.
type ExportConfig struct {
	// Format is the download format: "csv" or "tsv"
	Format string `toml:"format" json:"format"`
	// ClipboardFormat is the clipboard format: "csv" or "tsv"
	ClipboardFormat string `toml:"clipboard_format" json:"clipboard_format"`
	// LineEnding is "auto" (CRLF on Windows, LF elsewhere), "lf" or "crlf"
	LineEnding string `toml:"line_ending" json:"line_ending"`
	// OutputDir is where downloads are written (empty = current directory)
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// Filename is the suggested download name
	Filename string `toml:"filename" json:"filename"`
	// OpenAfterExport opens downloads in the default application
	OpenAfterExport bool `toml:"open_after_export" json:"open_after_export"`
	// Clipboard backend: "system" (platform utilities) or "osc52" (terminal)
	Clipboard string `toml:"clipboard" json:"clipboard"`
}

// GridConfig controls the terminal grid.
type GridConfig struct {
	// IndexColumn shows the row-number column
	IndexColumn bool `toml:"index_column" json:"index_column"`
	// IndexTitle is the header of the row-number column
	IndexTitle string `toml:"index_title" json:"index_title"`
	// ColumnWidth is the initial width of body columns, in cells
	ColumnWidth int `toml:"column_width" json:"column_width"`
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme" json:"theme"`
	// WatchSource reloads the grid when the source file changes
	WatchSource bool `toml:"watch_source" json:"watch_source"`
}

// DataConfig selects what to read from multi-table sources.
type DataConfig struct {
	// Sheet is the workbook sheet (empty = first sheet)
	Sheet string `toml:"sheet" json:"sheet"`
	// Table is the SQLite table (empty = first table)
	Table string `toml:"table" json:"table"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Export: ExportConfig{
			Format:          "csv",
			ClipboardFormat: "tsv",
			LineEnding:      "auto",
			OutputDir:       ".",
			Filename:        "tableRows.csv",
			OpenAfterExport: false,
			Clipboard:       "system",
		},

		Grid: GridConfig{
			IndexColumn: true,
			IndexTitle:  "#",
			ColumnWidth: 16,
			Theme:       "auto",
			WatchSource: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the gridcopy configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".gridcopy"), nil
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

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}
	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Booleans absent from the file keep their defaults.
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

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Export
	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}
	if cfg.Export.ClipboardFormat == "" {
		cfg.Export.ClipboardFormat = defaults.Export.ClipboardFormat
	}
	if cfg.Export.LineEnding == "" {
		cfg.Export.LineEnding = defaults.Export.LineEnding
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = defaults.Export.OutputDir
	}
	if cfg.Export.Filename == "" {
		cfg.Export.Filename = defaults.Export.Filename
	}
	if cfg.Export.Clipboard == "" {
		cfg.Export.Clipboard = defaults.Export.Clipboard
	}

	// Grid
	if cfg.Grid.IndexTitle == "" {
		cfg.Grid.IndexTitle = defaults.Grid.IndexTitle
	}
	if cfg.Grid.ColumnWidth <= 0 {
		cfg.Grid.ColumnWidth = defaults.Grid.ColumnWidth
	}
	if cfg.Grid.Theme == "" {
		cfg.Grid.Theme = defaults.Grid.Theme
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# gridcopy configuration file\n")
	sb.WriteString("# Generated by gridcopy - edit with care\n\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
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

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	oneOf := func(field, value string, allowed ...string) {
		v := strings.ToLower(value)
		for _, a := range allowed {
			if v == a {
				return
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value '%s', must be one of: %s", value, strings.Join(allowed, ", ")),
		})
	}

	oneOf("export.format", c.Export.Format, "csv", "tsv")
	oneOf("export.clipboard_format", c.Export.ClipboardFormat, "csv", "tsv")
	oneOf("export.line_ending", c.Export.LineEnding, "auto", "lf", "crlf")
	oneOf("export.clipboard", c.Export.Clipboard, "system", "osc52")
	oneOf("grid.theme", c.Grid.Theme, "auto", "dark", "light")

	if strings.ContainsAny(c.Export.Filename, `/\`) {
		errs = append(errs, ValidationError{
			Field:   "export.filename",
			Message: "must be a file name, not a path",
		})
	}
	if c.Grid.ColumnWidth < 3 || c.Grid.ColumnWidth > 200 {
		errs = append(errs, ValidationError{
			Field:   "grid.column_width",
			Message: fmt.Sprintf("must be between 3 and 200, got %d", c.Grid.ColumnWidth),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported variables:
//   - GRIDCOPY_FORMAT: export format
//   - GRIDCOPY_LINE_ENDING: auto, lf or crlf
//   - GRIDCOPY_OUTPUT_DIR: download directory
//   - GRIDCOPY_CLIPBOARD: system or osc52
//   - GRIDCOPY_THEME: auto, dark or light
//   - GRIDCOPY_INDEX: show the row-number column (true/false)
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GRIDCOPY_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("GRIDCOPY_LINE_ENDING"); v != "" {
		c.Export.LineEnding = v
	}
	if v := os.Getenv("GRIDCOPY_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("GRIDCOPY_CLIPBOARD"); v != "" {
		c.Export.Clipboard = v
	}
	if v := os.Getenv("GRIDCOPY_THEME"); v != "" {
		c.Grid.Theme = v
	}
	if v := os.Getenv("GRIDCOPY_INDEX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Grid.IndexColumn = b
		}
	}
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return sb.String()
}
