// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides selection export functionality for gridcopy.
//
// This package serializes a cell matrix into delimiter-separated text and
// delivers it to the clipboard or to a downloaded file.
//
// # Key Types
//
//   - Format: Export format enumeration (CSV, TSV)
//   - TabularExporter: matrix to text serializer
//   - ClipboardSink: best-effort clipboard writer
//   - FileSink: file download target
//   - Service: selection-aware entry points (CSV, CopyToClipboard)
//
// # Supported Formats
//
//   - CSV: every field quoted, embedded quotes doubled
//   - TSV: no quoting, embedded tabs replaced by a space
//
// # Usage
//
// Export the current selection to tableRows.csv:
//
//	opts := export.DefaultOptions()
//	svc := export.NewService(tbl, tbl, sel, opts).
//		WithDownloader(export.NewFileSink(opts, logger))
//	path, err := svc.CSV(true)
//
// Copy the selection, or everything when nothing is selected:
//
//	svc.WithClipboard(export.NewClipboardSink(export.SystemClipboard{}, nil, logger))
//	copied := svc.CopyToClipboard()
package export
