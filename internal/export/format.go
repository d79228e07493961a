// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupportedFormat is returned when a format name is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// =============================================================================
// FORMAT
// =============================================================================

// Format selects the delimiter-separated flavor.
type Format int

const (
	// FormatCSV quotes every field and doubles embedded quotes.
	FormatCSV Format = iota
	// FormatTSV never quotes and replaces embedded tabs with a space.
	FormatTSV
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	default:
		return FormatCSV, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatTSV {
		return "tsv"
	}
	return "csv"
}

// Separator returns the field separator.
func (f Format) Separator() string {
	if f == FormatTSV {
		return "\t"
	}
	return ","
}

// Quote returns the quote character, empty for TSV.
func (f Format) Quote() string {
	if f == FormatTSV {
		return ""
	}
	return `"`
}

// Escape applies the format's escaping rule to one field.
func (f Format) Escape(s string) string {
	if f == FormatTSV {
		return strings.ReplaceAll(s, "\t", " ")
	}
	return strings.ReplaceAll(s, `"`, `""`)
}

// FileExtension returns the file extension for the format.
func (f Format) FileExtension() string {
	return "." + f.String()
}

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	if f == FormatTSV {
		return "text/tab-separated-values"
	}
	return "text/csv"
}

// =============================================================================
// LINE ENDINGS
// =============================================================================

const (
	// LineEndingLF is the Unix line ending.
	LineEndingLF = "\n"
	// LineEndingCRLF is the Windows line ending.
	LineEndingCRLF = "\r\n"
)

// DefaultLineEnding returns CRLF on Windows and LF elsewhere.
func DefaultLineEnding() string {
	return lineEndingFor(runtime.GOOS)
}

func lineEndingFor(goos string) string {
	if goos == "windows" {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// ParseLineEnding maps "auto", "lf" or "crlf" to a line ending.
func ParseLineEnding(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return DefaultLineEnding(), nil
	case "lf", "unix":
		return LineEndingLF, nil
	case "crlf", "windows":
		return LineEndingCRLF, nil
	default:
		return "", fmt.Errorf("invalid line ending: %q", s)
	}
}
