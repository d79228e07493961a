// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnsupportedSource is returned for file types no loader handles.
	ErrUnsupportedSource = errors.New("unsupported data source")

	// ErrNoHeader is returned when a source has no header row.
	ErrNoHeader = errors.New("data source has no header row")
)

// =============================================================================
// LOAD OPTIONS
// =============================================================================

// LoadOptions configures dataset loading.
type LoadOptions struct {
	// IndexColumn adds a row-number column in front of the body.
	IndexColumn bool

	// IndexTitle is the header of the row-number column.
	// Default: "#"
	IndexTitle string

	// Sheet selects the workbook sheet. Empty means the first sheet.
	Sheet string

	// Table selects the SQLite table. Empty means the first user table.
	Table string
}

// DefaultLoadOptions returns default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		IndexColumn: true,
		IndexTitle:  "#",
	}
}

func (o LoadOptions) tableOptions() []TableOption {
	if !o.IndexColumn {
		return nil
	}
	title := o.IndexTitle
	if title == "" {
		title = "#"
	}
	return []TableOption{WithIndexColumn(title)}
}

// =============================================================================
// LOADERS
// =============================================================================

// Load reads a dataset, choosing the loader from the file extension.
func Load(path string, opts LoadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path, ',', opts)
	case ".tsv", ".tab":
		return LoadCSV(path, '\t', opts)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(context.Background(), path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}

// LoadCSV reads a delimited text file. The first record is the header.
func LoadCSV(path string, comma rune, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, comma, opts)
}

// ReadCSV reads delimited text from r. The first record is the header.
// A leading byte order mark selects UTF-8 or UTF-16 and is stripped;
// without one the input is read as UTF-8.
func ReadCSV(r io.Reader, comma rune, opts LoadOptions) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	if comma == '\t' {
		reader.LazyQuotes = true
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromStrings(records, opts)
}

// LoadXLSX reads one sheet of an Excel workbook. The first row is the header.
func LoadXLSX(path string, opts LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s: %w", path, ErrNoHeader)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return fromStrings(rows, opts)
}

// LoadSQLite reads every row of one table of a SQLite database.
func LoadSQLite(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Read-only access; one connection is enough
	db.SetMaxOpenConns(1)

	table := opts.Table
	if table == "" {
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name LIMIT 1",
		).Scan(&table)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("database %s has no tables: %w", path, ErrNoHeader)
		}
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var records [][]any
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			// Text columns may come back as []byte
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		records = append(records, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return NewTable(names, records, opts.tableOptions()...), nil
}

// =============================================================================
// HELPERS
// =============================================================================

// fromStrings turns header+records into a Table.
func fromStrings(rows [][]string, opts LoadOptions) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	records := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		records = append(records, values)
	}
	return NewTable(rows[0], records, opts.tableOptions()...), nil
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
