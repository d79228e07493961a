// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataset

import (
	"github.com/jeranaias/gridcopy/internal/grid"
)

// =============================================================================
// SELECTION
// =============================================================================

// Selection is a single contiguous rectangle defined by an anchor cell and a
// focus cell. It implements grid.SelectionManager.
type Selection struct {
	anchor *grid.Coordinate
	focus  *grid.Coordinate
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select starts a new selection at the anchor and extends it to focus.
func (s *Selection) Select(anchor, focus grid.Coordinate) {
	s.anchor = &anchor
	s.focus = &focus
}

// Extend moves the focus, keeping the anchor. Without an anchor it starts a
// single-cell selection.
func (s *Selection) Extend(focus grid.Coordinate) {
	if s.anchor == nil {
		s.Select(focus, focus)
		return
	}
	s.focus = &focus
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.anchor = nil
	s.focus = nil
}

// Active reports whether a selection exists.
func (s *Selection) Active() bool {
	return s.anchor != nil && s.focus != nil
}

// Focus returns the focus cell, if any.
func (s *Selection) Focus() (grid.Coordinate, bool) {
	if s.focus == nil {
		return grid.Coordinate{}, false
	}
	return *s.focus, true
}

// SelectAll selects every row and every column of tbl, index included.
func (s *Selection) SelectAll(tbl *Table) {
	if tbl.RowCount() == 0 {
		s.Clear()
		return
	}
	cols := tbl.DisplayColumns()
	if len(cols) == 0 {
		s.Clear()
		return
	}
	s.Select(tbl.CoordinateAt(0, 0), tbl.CoordinateAt(tbl.RowCount()-1, len(cols)-1))
}

// RowsRangeCells returns the selected rows, or nil.
func (s *Selection) RowsRangeCells() *grid.Range {
	return s.rangeCells()
}

// ColumnsRangeCells returns the selected columns, or nil.
func (s *Selection) ColumnsRangeCells() *grid.Range {
	return s.rangeCells()
}

func (s *Selection) rangeCells() *grid.Range {
	if !s.Active() {
		return nil
	}
	r := grid.Range{Start: *s.anchor, End: *s.focus}.Normalize()
	return &r
}

// Contains reports whether c lies inside the selection.
func (s *Selection) Contains(tbl *Table, c grid.Coordinate) bool {
	r := s.rangeCells()
	if r == nil {
		return false
	}
	if c.Row < r.Start.Row || c.Row > r.End.Row {
		return false
	}
	pos := tbl.Position(c)
	return pos >= tbl.Position(r.Start) && pos <= tbl.Position(r.End)
}
