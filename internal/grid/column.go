// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"fmt"
	"reflect"
)

// =============================================================================
// CELL FORMAT CONFIG
// =============================================================================

// CellFormatConfig is the input handed to a column's FormatFunc. Geometry is
// only meaningful while painting; export leaves it zeroed.
type CellFormatConfig struct {
	Row    int
	Column int
	Region Region
	Value  any

	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CellOption sets one field of a CellFormatConfig.
type CellOption func(*CellFormatConfig)

// WithRow sets the row index.
func WithRow(row int) CellOption {
	return func(c *CellFormatConfig) { c.Row = row }
}

// WithColumn sets the column index.
func WithColumn(col int) CellOption {
	return func(c *CellFormatConfig) { c.Column = col }
}

// WithRegion sets the region.
func WithRegion(region Region) CellOption {
	return func(c *CellFormatConfig) { c.Region = region }
}

// WithValue sets the raw value.
func WithValue(v any) CellOption {
	return func(c *CellFormatConfig) { c.Value = v }
}

// WithGeometry sets the painted bounds of the cell.
func WithGeometry(x, y, width, height float64) CellOption {
	return func(c *CellFormatConfig) {
		c.X, c.Y, c.Width, c.Height = x, y, width, height
	}
}

// NewCellConfig builds a config from partial input. Omitted fields default to
// row 0, column 0, value 0, region body and zero geometry.
func NewCellConfig(opts ...CellOption) CellFormatConfig {
	cfg := CellFormatConfig{
		Region: RegionBody,
		Value:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// =============================================================================
// COLUMN
// =============================================================================

// FormatFunc turns a raw cell into its display value.
type FormatFunc func(CellFormatConfig) string

// Column describes one grid column. Index is the record field the column
// reads, which stays fixed when columns are reordered; the display position
// travels in Coordinate.Column.
type Column struct {
	Index  int
	Name   string
	Region Region
	Format FormatFunc
}

// IsIndex reports whether the column is the row-number column.
func (c Column) IsIndex() bool {
	return c.Region == RegionRowHeader
}

// FormatCell runs the column's formatter, falling back to Stringify.
func (c Column) FormatCell(cfg CellFormatConfig) string {
	if c.Format == nil {
		return Stringify(cfg.Value)
	}
	return c.Format(cfg)
}

// Stringify renders a raw value. nil, including a nil pointer, becomes the
// empty string, never "<nil>".
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// =============================================================================
// COLLABORATORS
// =============================================================================

// Row is one record of the dataset.
type Row interface {
	Index() int
	Value(column int) any
}

// RowManager owns the dataset rows.
type RowManager interface {
	// TakeRows returns rows in [start, endExclusive), clipped to the dataset.
	TakeRows(start, endExclusive int) []Row
	RowCount() int
}

// ColumnManager owns the column descriptors of every region.
type ColumnManager interface {
	// TakeColumnsByCells returns the columns drawn between start and end,
	// inclusive, in display order.
	TakeColumnsByCells(start, end Coordinate) []Column
	Columns(region Region) []Column
}

// SelectionManager exposes the active selection. Either accessor returns nil
// when nothing is selected.
type SelectionManager interface {
	RowsRangeCells() *Range
	ColumnsRangeCells() *Range
}

// Renderer repaints a sub-rectangle of one region.
type Renderer interface {
	RepaintRegion(region string, x, y, width, height float64)
}
