// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for gridcopy.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ExportConfig: Download and clipboard behavior
//   - GridConfig: Terminal grid display
//   - DataConfig: Sheet/table selection for multi-table sources
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (GRIDCOPY_*)
//   - ~/.gridcopy/config.toml
//   - ~/.gridcopy/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	format := cfg.Export.Format
//	width := cfg.Grid.ColumnWidth
package config
