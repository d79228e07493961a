// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the gridcopy command line.
//
// # Commands
//
//	gridcopy [file]                      Same as "gridcopy view <file>"
//	gridcopy view <file>                 Interactive grid
//	gridcopy export <file> [--range]     Save CSV/TSV to a file or stdout
//	gridcopy copy <file> [--range]       Copy TSV/CSV to the clipboard
//	gridcopy config show|init|path       Manage ~/.gridcopy/config.toml
//
// # Persistent Flags
//
//	--config PATH    Use a specific config file
//	--debug          Log to gridcopy-debug.log
//	--sheet NAME     Workbook sheet
//	--table NAME     SQLite table
//	--no-index       Hide the row-number column
//
// # Ranges
//
// A range is "r0:c0-r1:c1" with zero-based rows and body columns. "#" in
// a column position names the row-number column, which is never written to
// the output. "r:c" alone selects one cell, and a single cell exports
// without a header row.
//
// # Exit Codes
//
// Execute returns ExitUsageError for bad flags and unsupported formats,
// ExitConfigError for invalid configuration, ExitNotFoundError for missing
// files and ExitGeneralError otherwise.
package cli
