// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package matrix

import (
	"github.com/jeranaias/gridcopy/internal/grid"
)

// =============================================================================
// SELECTION
// =============================================================================

// Selection is a resolved pair of ranges ready for matrix construction.
// Only the row part of Rows and the column part of Columns are consulted.
type Selection struct {
	Rows    grid.Range
	Columns grid.Range
}

// HasIndex reports whether the selection starts at the index column.
func (s Selection) HasIndex() bool {
	return s.Columns.Start.Region == grid.RegionRowHeader
}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver maps the active selection, or the whole dataset, to ranges.
type Resolver struct {
	rows      grid.RowManager
	columns   grid.ColumnManager
	selection grid.SelectionManager
}

// NewResolver creates a resolver over the given managers.
func NewResolver(rows grid.RowManager, columns grid.ColumnManager, selection grid.SelectionManager) *Resolver {
	return &Resolver{rows: rows, columns: columns, selection: selection}
}

// SelectedCells returns the normalized active selection. ok is false when
// either range is missing, which callers treat as "nothing selected".
func (r *Resolver) SelectedCells() (Selection, bool) {
	if r.selection == nil {
		return Selection{}, false
	}
	rows := r.selection.RowsRangeCells()
	cols := r.selection.ColumnsRangeCells()
	if rows == nil || cols == nil {
		return Selection{}, false
	}
	return Selection{
		Rows:    rows.Normalize(),
		Columns: cols.Normalize(),
	}, true
}

// AllCells returns a selection covering every row and column. Columns run
// from the index column to the last body column. With no body columns the
// end column degrades to 0.
func (r *Resolver) AllCells() Selection {
	lastRow := r.rows.RowCount() - 1
	if lastRow < 0 {
		lastRow = 0
	}
	lastCol := len(r.columns.Columns(grid.RegionBody)) - 1
	if lastCol < 0 {
		lastCol = 0
	}

	start := grid.Coordinate{Row: 0, Column: 0, Region: grid.RegionRowHeader}
	if len(r.columns.Columns(grid.RegionRowHeader)) == 0 {
		start.Region = grid.RegionBody
	}
	end := grid.Coordinate{Row: lastRow, Column: lastCol, Region: grid.RegionBody}

	all := grid.Range{Start: start, End: end}
	return Selection{Rows: all, Columns: all}
}
