// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import "fmt"

// =============================================================================
// REGION
// =============================================================================

// Region classifies the role of a cell inside the grid.
type Region int

const (
	// RegionBody is the data area. It is the zero value so that partially
	// filled coordinates default to the body.
	RegionBody Region = iota
	// RegionRowHeader holds the index column.
	RegionRowHeader
	// RegionColumnHeader holds the column titles.
	RegionColumnHeader
	// RegionCorner is the cell above the index column.
	RegionCorner
)

// String returns the renderer's name for the region.
func (r Region) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionRowHeader:
		return "rowHeaders"
	case RegionColumnHeader:
		return "colHeaders"
	case RegionCorner:
		return "corner"
	default:
		return fmt.Sprintf("region(%d)", int(r))
	}
}

// order returns the horizontal display order of a region. The index column
// is drawn to the left of the body.
func (r Region) order() int {
	switch r {
	case RegionRowHeader, RegionCorner:
		return 0
	default:
		return 1
	}
}

// =============================================================================
// COORDINATE
// =============================================================================

// Coordinate addresses a single cell.
type Coordinate struct {
	Row    int
	Column int
	Region Region
}

// Equal reports whether c and other address the same cell.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Column == other.Column && c.Region == other.Region
}

// String formats the coordinate for logs and status lines.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s[%d:%d]", c.Region, c.Row, c.Column)
}

// CellsEqual compares two optional coordinates. Two nils are equal; nil is
// never equal to a set coordinate.
func CellsEqual(a, b *Coordinate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// before reports whether c is drawn to the left of other.
func (c Coordinate) before(other Coordinate) bool {
	if c.Region.order() != other.Region.order() {
		return c.Region.order() < other.Region.order()
	}
	return c.Column < other.Column
}

// =============================================================================
// RANGE
// =============================================================================

// Range is an inclusive rectangle of cells. Start and End may arrive in any
// order; call Normalize before iterating.
type Range struct {
	Start Coordinate
	End   Coordinate
}

// Normalize returns a copy of r whose Start is the top-left endpoint and End
// the bottom-right one. Columns are ordered by display position, so each
// column keeps the region it was given.
func (r Range) Normalize() Range {
	out := r
	if out.End.Row < out.Start.Row {
		out.Start.Row, out.End.Row = out.End.Row, out.Start.Row
	}
	if out.End.before(out.Start) {
		out.Start.Column, out.End.Column = out.End.Column, out.Start.Column
		out.Start.Region, out.End.Region = out.End.Region, out.Start.Region
	}
	return out
}

// Rows returns the number of rows covered by the normalized range.
func (r Range) Rows() int {
	n := r.Normalize()
	return n.End.Row - n.Start.Row + 1
}
