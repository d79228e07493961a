// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/gridcopy/internal/matrix"
)

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// Format used by CSV downloads.
	// Default: FormatCSV
	Format Format

	// ClipboardFormat used by CopyToClipboard.
	// Default: FormatTSV
	ClipboardFormat Format

	// LineEnding terminates every exported row.
	// Default: "\r\n" on Windows, "\n" elsewhere
	LineEnding string

	// Filename suggested for downloads.
	// Default: "tableRows.csv"
	Filename string

	// OutputDir is the directory where downloads are saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the downloaded file in the default application.
	OpenAfterExport bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		Format:          FormatCSV,
		ClipboardFormat: FormatTSV,
		LineEnding:      DefaultLineEnding(),
		Filename:        DefaultFilename,
		OutputDir:       ".",
	}
}

// DefaultFilename is the suggested name of downloaded exports.
const DefaultFilename = "tableRows.csv"

// =============================================================================
// TABULAR EXPORTER
// =============================================================================

// TabularExporter serializes matrices into delimiter-separated text.
type TabularExporter struct {
	lineEnding string
}

// NewTabularExporter creates an exporter terminating rows with lineEnding.
// An empty lineEnding selects the platform default.
func NewTabularExporter(lineEnding string) *TabularExporter {
	if lineEnding == "" {
		lineEnding = DefaultLineEnding()
	}
	return &TabularExporter{lineEnding: lineEnding}
}

// LineEnding returns the row terminator in use.
func (e *TabularExporter) LineEnding() string {
	return e.lineEnding
}

// ExportCellsTo renders m in the given format. When hasIndex is true the
// first column of every row, header included, is left out. Every row is
// terminated by the line ending. A matrix with nothing left once the index
// column is dropped renders as the empty string.
func (e *TabularExporter) ExportCellsTo(m matrix.Matrix, format Format, hasIndex bool) string {
	if hasIndex && onlyIndex(m) {
		return ""
	}

	var sb strings.Builder
	sep := format.Separator()
	quote := format.Quote()

	for _, row := range m {
		cells := row
		if hasIndex && len(cells) > 0 {
			cells = cells[1:]
		}
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(quote)
			sb.WriteString(format.Escape(cell))
			sb.WriteString(quote)
		}
		sb.WriteString(e.lineEnding)
	}
	return sb.String()
}

func onlyIndex(m matrix.Matrix) bool {
	for _, row := range m {
		if len(row) > 1 {
			return false
		}
	}
	return true
}
