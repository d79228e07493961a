// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package matrix

import (
	"github.com/jeranaias/gridcopy/internal/grid"
)

// Matrix is an ordered sequence of rows of display values. When present, the
// header row comes first.
type Matrix [][]string

// =============================================================================
// BUILDER
// =============================================================================

// Builder produces formatted matrices from row and column ranges.
type Builder struct {
	rows    grid.RowManager
	columns grid.ColumnManager
}

// NewBuilder creates a builder over the given managers.
func NewBuilder(rows grid.RowManager, columns grid.ColumnManager) *Builder {
	return &Builder{rows: rows, columns: columns}
}

// Cells builds the matrix for the rows of rowsRange and the columns of
// columnsRange. A header row of column names is emitted only when more than
// one row or more than one column is resolved. Formatter panics propagate.
func (b *Builder) Cells(rowsRange, columnsRange grid.Range) Matrix {
	rr := rowsRange.Normalize()
	cr := columnsRange.Normalize()

	rows := b.rows.TakeRows(rr.Start.Row, rr.End.Row+1)
	cols := b.columns.TakeColumnsByCells(cr.Start, cr.End)
	if len(rows) == 0 || len(cols) == 0 {
		return Matrix{}
	}

	out := make(Matrix, 0, len(rows)+1)
	if len(rows) > 1 || len(cols) > 1 {
		header := make([]string, len(cols))
		for i, col := range cols {
			header[i] = col.Name
		}
		out = append(out, header)
	}

	for _, row := range rows {
		line := make([]string, len(cols))
		for i, col := range cols {
			line[i] = col.FormatCell(cellConfig(row, col))
		}
		out = append(out, line)
	}
	return out
}

// cellConfig builds the formatter input for one cell. The index column shows
// the row index rather than a stored value.
func cellConfig(row grid.Row, col grid.Column) grid.CellFormatConfig {
	if col.IsIndex() {
		return grid.NewCellConfig(
			grid.WithRow(row.Index()),
			grid.WithColumn(col.Index),
			grid.WithRegion(grid.RegionRowHeader),
			grid.WithValue(row.Index()),
		)
	}
	return grid.NewCellConfig(
		grid.WithRow(row.Index()),
		grid.WithColumn(col.Index),
		grid.WithRegion(grid.RegionBody),
		grid.WithValue(row.Value(col.Index)),
	)
}
