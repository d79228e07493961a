// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the grid, export and config
// packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// Display:
//   - Width, Truncate, Fit: terminal-width aware cell text
//   - SingleLine: flatten multi-line values for one grid row
//
// # Usage
//
//	// Write downloads atomically to prevent partial files
//	err := util.AtomicWriteFile(path, data, 0644)
//
//	// Fit a value into a 12-column cell
//	cell := util.Fit(value, 12)
package util
