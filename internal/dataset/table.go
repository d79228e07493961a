// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataset

import (
	"github.com/jeranaias/gridcopy/internal/grid"
)

// =============================================================================
// RECORD
// =============================================================================

// Record is one row of a Table.
type Record struct {
	index  int
	values []any
}

// Index returns the position of the record in its table.
func (r Record) Index() int {
	return r.index
}

// Value returns the raw value of a body column, or nil when the record is
// shorter than the header.
func (r Record) Value(column int) any {
	if column < 0 || column >= len(r.values) {
		return nil
	}
	return r.values[column]
}

// =============================================================================
// TABLE
// =============================================================================

// Table is an in-memory dataset. It serves both rows and column descriptors.
type Table struct {
	index   []grid.Column
	columns []grid.Column
	records []Record
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithIndexColumn adds a row-number column titled title in front of the body.
func WithIndexColumn(title string) TableOption {
	return func(t *Table) {
		t.index = []grid.Column{{
			Index:  0,
			Name:   title,
			Region: grid.RegionRowHeader,
		}}
	}
}

// WithFormatter installs a display formatter on the named body column.
func WithFormatter(name string, fn grid.FormatFunc) TableOption {
	return func(t *Table) {
		for i := range t.columns {
			if t.columns[i].Name == name {
				t.columns[i].Format = fn
			}
		}
	}
}

// NewTable builds a table from a header and raw records.
func NewTable(names []string, records [][]any, opts ...TableOption) *Table {
	t := &Table{
		columns: make([]grid.Column, len(names)),
		records: make([]Record, len(records)),
	}
	for i, name := range names {
		t.columns[i] = grid.Column{Index: i, Name: name, Region: grid.RegionBody}
	}
	for i, values := range records {
		t.records[i] = Record{index: i, values: values}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HasIndex reports whether the table carries a row-number column.
func (t *Table) HasIndex() bool {
	return len(t.index) > 0
}

// RowCount returns the number of records.
func (t *Table) RowCount() int {
	return len(t.records)
}

// TakeRows returns records in [start, endExclusive), clipped to the table.
func (t *Table) TakeRows(start, endExclusive int) []grid.Row {
	if start < 0 {
		start = 0
	}
	if endExclusive > len(t.records) {
		endExclusive = len(t.records)
	}
	if start >= endExclusive {
		return nil
	}
	rows := make([]grid.Row, 0, endExclusive-start)
	for i := start; i < endExclusive; i++ {
		rows = append(rows, t.records[i])
	}
	return rows
}

// Columns returns the columns of one region.
func (t *Table) Columns(region grid.Region) []grid.Column {
	switch region {
	case grid.RegionRowHeader:
		return append([]grid.Column(nil), t.index...)
	case grid.RegionBody:
		return append([]grid.Column(nil), t.columns...)
	default:
		return nil
	}
}

// DisplayColumns returns every column in drawing order: index first.
func (t *Table) DisplayColumns() []grid.Column {
	out := make([]grid.Column, 0, len(t.index)+len(t.columns))
	out = append(out, t.index...)
	return append(out, t.columns...)
}

// TakeColumnsByCells returns the columns drawn between start and end,
// inclusive, in display order. Endpoints may be given in either order.
func (t *Table) TakeColumnsByCells(start, end grid.Coordinate) []grid.Column {
	all := t.DisplayColumns()
	if len(all) == 0 {
		return nil
	}
	lo, hi := t.Position(start), t.Position(end)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= len(all) {
		hi = len(all) - 1
	}
	if lo > hi {
		return nil
	}
	return append([]grid.Column(nil), all[lo:hi+1]...)
}

// Position maps a coordinate to its index in DisplayColumns.
func (t *Table) Position(c grid.Coordinate) int {
	switch c.Region {
	case grid.RegionRowHeader, grid.RegionCorner:
		return c.Column
	default:
		return len(t.index) + c.Column
	}
}

// CoordinateAt maps a display position back to a coordinate.
func (t *Table) CoordinateAt(row, position int) grid.Coordinate {
	if position < len(t.index) {
		return grid.Coordinate{Row: row, Column: position, Region: grid.RegionRowHeader}
	}
	return grid.Coordinate{Row: row, Column: position - len(t.index), Region: grid.RegionBody}
}

// MoveColumn reorders body columns, moving the column at from to position to.
// Column indexes keep pointing at the same record fields.
func (t *Table) MoveColumn(from, to int) {
	n := len(t.columns)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	col := t.columns[from]
	cols := append(t.columns[:from:from], t.columns[from+1:]...)
	cols = append(cols[:to], append([]grid.Column{col}, cols[to:]...)...)
	t.columns = cols
}
