// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hover

import (
	"math"
	"net/url"
	"strings"

	"github.com/jeranaias/gridcopy/internal/grid"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Mode is the pointer gesture currently in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModeColumnResize
	ModeColumnDrag
	ModeSelecting
)

// InteractionMode reports the active gesture.
type InteractionMode interface {
	Mode() Mode
}

// Cursor is the pointer shape shown over the grid.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// CursorSetter changes the pointer shape.
type CursorSetter interface {
	SetCursor(Cursor)
}

// =============================================================================
// HOVERED CELL
// =============================================================================

// Rect is the painted bounds of a row.
type Rect struct {
	X, Y, Width, Height float64
}

// Valid reports whether every field is a finite number.
func (r Rect) Valid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Cell is one hover event: the cell under the pointer, its raw value and the
// bounds of the row that contains it.
type Cell struct {
	grid.Coordinate
	Value any
	Row   Rect
}

// =============================================================================
// TRACKER
// =============================================================================

// Tracker is a two-state machine: idle, or hovering one cell.
type Tracker struct {
	mode     InteractionMode
	cursor   CursorSetter
	renderer grid.Renderer

	hovered *Cell
}

// NewTracker creates an idle tracker. mode and cursor may be nil.
func NewTracker(renderer grid.Renderer, mode InteractionMode, cursor CursorSetter) *Tracker {
	return &Tracker{renderer: renderer, mode: mode, cursor: cursor}
}

// Hovered returns the current hovered cell.
func (t *Tracker) Hovered() (Cell, bool) {
	if t.hovered == nil {
		return Cell{}, false
	}
	return *t.hovered, true
}

// IsHovered reports whether c is the hovered cell.
func (t *Tracker) IsHovered(c grid.Coordinate) bool {
	return t.hovered != nil && t.hovered.Coordinate.Equal(c)
}

// OnHover handles a pointer-move event. newData is nil when the pointer left
// every cell. Events during a column resize or drag are ignored.
func (t *Tracker) OnHover(newData *Cell) {
	if t.mode != nil {
		switch t.mode.Mode() {
		case ModeColumnResize, ModeColumnDrag:
			return
		}
	}

	if t.cursor != nil {
		if newData != nil && IsURL(grid.Stringify(newData.Value)) {
			t.cursor.SetCursor(CursorPointer)
		} else {
			t.cursor.SetCursor(CursorDefault)
		}
	}

	if grid.CellsEqual(t.coordinate(), coordinateOf(newData)) {
		return
	}

	t.repaint(t.hovered)
	t.repaint(newData)

	if newData == nil {
		t.hovered = nil
		return
	}
	c := *newData
	t.hovered = &c
}

// Reset forgets the hovered cell without repainting, for use after the
// whole grid was redrawn anyway.
func (t *Tracker) Reset() {
	t.hovered = nil
}

func (t *Tracker) coordinate() *grid.Coordinate {
	return coordinateOf(t.hovered)
}

func (t *Tracker) repaint(c *Cell) {
	if c == nil || t.renderer == nil || !c.Row.Valid() {
		return
	}
	t.renderer.RepaintRegion(c.Region.String(), c.Row.X, c.Row.Y, c.Row.Width, c.Row.Height)
}

func coordinateOf(c *Cell) *grid.Coordinate {
	if c == nil {
		return nil
	}
	return &c.Coordinate
}

// IsURL reports whether s is an absolute http, https or ftp URL.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
		return true
	default:
		return false
	}
}
