// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jeranaias/gridcopy/internal/matrix"
)

// indexedMatrix has an index column in position 0.
var indexedMatrix = matrix.Matrix{
	{"#", "A", "B"},
	{"x0", "a0", "b0"},
	{"x1", "a1", "b1"},
}

func TestExportCellsToCSVWithIndex(t *testing.T) {
	e := NewTabularExporter(LineEndingLF)
	got := e.ExportCellsTo(indexedMatrix, FormatCSV, true)

	want := "\"A\",\"B\"\n\"a0\",\"b0\"\n\"a1\",\"b1\"\n"
	if got != want {
		t.Errorf("ExportCellsTo() = %q, want %q", got, want)
	}
}

func TestExportCellsToKeepsIndexWhenFalse(t *testing.T) {
	e := NewTabularExporter(LineEndingLF)
	got := e.ExportCellsTo(indexedMatrix, FormatTSV, false)

	want := "#\tA\tB\nx0\ta0\tb0\nx1\ta1\tb1\n"
	if got != want {
		t.Errorf("ExportCellsTo() = %q, want %q", got, want)
	}
}

func TestExportCellsToEscaping(t *testing.T) {
	m := matrix.Matrix{{`say "hi"`, "tab\there", "a,b"}}

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"csv doubles quotes", FormatCSV, `"say ""hi""","tab` + "\t" + `here","a,b"` + "\n"},
		{"tsv replaces tabs", FormatTSV, "say \"hi\"\ttab here\ta,b\n"},
	}

	e := NewTabularExporter(LineEndingLF)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.ExportCellsTo(m, tt.format, false); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportCellsToLineEndings(t *testing.T) {
	m := matrix.Matrix{{"a"}, {"b"}}

	if got := NewTabularExporter(LineEndingCRLF).ExportCellsTo(m, FormatTSV, false); got != "a\r\nb\r\n" {
		t.Errorf("crlf: got %q", got)
	}
	if got := NewTabularExporter("").LineEnding(); got != DefaultLineEnding() {
		t.Errorf("default line ending = %q", got)
	}
	if lineEndingFor("windows") != "\r\n" || lineEndingFor("linux") != "\n" || lineEndingFor("darwin") != "\n" {
		t.Error("platform line ending mapping is wrong")
	}
}

func TestExportCellsToEmpty(t *testing.T) {
	e := NewTabularExporter(LineEndingLF)
	if got := e.ExportCellsTo(matrix.Matrix{}, FormatCSV, true); got != "" {
		t.Errorf("empty matrix exported as %q", got)
	}
	if got := e.ExportCellsTo(matrix.Matrix{{""}}, FormatCSV, false); got != "\"\"\n" {
		t.Errorf("empty cell exported as %q", got)
	}
	if got := e.ExportCellsTo(matrix.Matrix{{"#"}, {"0"}, {"1"}}, FormatCSV, true); got != "" {
		t.Errorf("index-only matrix exported as %q", got)
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	m := matrix.Matrix{
		{"name", "quote", "comma"},
		{"plain", `he said "no"`, "1,2,3"},
		{"", "multi\nline", `""`},
	}
	out := NewTabularExporter(LineEndingCRLF).ExportCellsTo(m, FormatCSV, false)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != len(m) {
		t.Fatalf("got %d records, want %d", len(records), len(m))
	}
	for i := range m {
		for j := range m[i] {
			if records[i][j] != m[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, records[i][j], m[i][j])
			}
		}
	}
}

func TestExportTSVRoundTrip(t *testing.T) {
	m := matrix.Matrix{{"a", "b c", `"q"`}, {"1", "2", "3"}}
	out := NewTabularExporter(LineEndingLF).ExportCellsTo(m, FormatTSV, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if strings.Join(fields, "|") != strings.Join(m[i], "|") {
			t.Errorf("line %d = %v, want %v", i, fields, m[i])
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"TSV", FormatTSV, false},
		{"", FormatCSV, false},
		{"xlsx", FormatCSV, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLineEnding(t *testing.T) {
	if got, _ := ParseLineEnding("crlf"); got != "\r\n" {
		t.Errorf("crlf = %q", got)
	}
	if got, _ := ParseLineEnding("lf"); got != "\n" {
		t.Errorf("lf = %q", got)
	}
	if got, _ := ParseLineEnding("auto"); got != DefaultLineEnding() {
		t.Errorf("auto = %q", got)
	}
	if _, err := ParseLineEnding("cr"); err == nil {
		t.Error("expected error for cr")
	}
}

func TestFormatMetadata(t *testing.T) {
	if FormatCSV.MimeType() != "text/csv" || FormatCSV.FileExtension() != ".csv" {
		t.Error("csv metadata is wrong")
	}
	if FormatTSV.Separator() != "\t" || FormatTSV.Quote() != "" {
		t.Error("tsv options are wrong")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"tableRows.csv":   "tableRows.csv",
		"../etc/passwd":   "..-etc-passwd",
		"my rows?.csv":    "my_rows-.csv",
		"":                DefaultFilename,
		"bad\x00name.csv": "bad-name.csv",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
