// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gridcopy/internal/grid"
	"github.com/jeranaias/gridcopy/internal/hover"
)

// =============================================================================
// KEYBOARD
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gate.suppressed() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0, false)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0, false)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1, false)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1, false)
	case key.Matches(msg, m.keys.ExtendUp):
		m.moveFocus(-1, 0, true)
	case key.Matches(msg, m.keys.ExtendDown):
		m.moveFocus(1, 0, true)
	case key.Matches(msg, m.keys.ExtendLeft):
		m.moveFocus(0, -1, true)
	case key.Matches(msg, m.keys.ExtendRight):
		m.moveFocus(0, 1, true)
	case key.Matches(msg, m.keys.PageUp):
		m.moveFocus(-max(1, m.bodyHeight()), 0, false)
	case key.Matches(msg, m.keys.PageDown):
		m.moveFocus(max(1, m.bodyHeight()), 0, false)
	case key.Matches(msg, m.keys.Home):
		m.moveFocus(-m.table.RowCount(), 0, false)
	case key.Matches(msg, m.keys.End):
		m.moveFocus(m.table.RowCount(), 0, false)

	case key.Matches(msg, m.keys.SelectAll):
		m.sel.SelectAll(m.table)
		m.lines.invalidateAll()
	case key.Matches(msg, m.keys.Clear):
		m.sel.Clear()
		m.lines.invalidateAll()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelection()
	case key.Matches(msg, m.keys.Export):
		if !m.sel.Active() {
			return m, m.setStatus(statusError, "nothing selected")
		}
		return m, m.download(true)
	case key.Matches(msg, m.keys.ExportAll):
		return m, m.download(false)

	case key.Matches(msg, m.keys.Widen):
		m.resizeFocused(2)
	case key.Matches(msg, m.keys.Narrow):
		m.resizeFocused(-2)
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveFocusedColumn(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveFocusedColumn(1)

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}
	return m, nil
}

// focus returns the keyboard focus cell, defaulting to the first body cell.
func (m Model) focus() grid.Coordinate {
	if c, ok := m.sel.Focus(); ok {
		return c
	}
	return m.table.CoordinateAt(0, m.indexCount())
}

// moveFocus moves the focus by rows and columns, either collapsing the
// selection onto it or extending the selection to it.
func (m *Model) moveFocus(dRow, dCol int, extend bool) {
	nCols := len(m.table.DisplayColumns())
	if m.table.RowCount() == 0 || nCols == 0 {
		return
	}

	cur := m.focus()
	row := max(0, min(cur.Row+dRow, m.table.RowCount()-1))
	pos := max(0, min(m.table.Position(cur)+dCol, nCols-1))
	next := m.table.CoordinateAt(row, pos)

	if extend {
		m.sel.Extend(next)
	} else {
		m.sel.Select(next, next)
	}
	m.ensureVisible(next)
	m.tracker.Reset()
	m.lines.invalidateAll()
}

func (m *Model) resizeFocused(delta int) {
	c := m.focus()
	if c.Region != grid.RegionBody || c.Column >= m.bodyCount() {
		return
	}
	col := m.table.Columns(grid.RegionBody)[c.Column]
	m.widths[col.Index] = clampWidth(m.columnWidth(col) + delta)
	m.lines.invalidateAll()
}

func (m *Model) moveFocusedColumn(delta int) {
	c := m.focus()
	if c.Region != grid.RegionBody {
		return
	}
	to := c.Column + delta
	if to < 0 || to >= m.bodyCount() {
		return
	}
	m.table.MoveColumn(c.Column, to)

	// The focus follows the moved column.
	next := grid.Coordinate{Row: c.Row, Column: to, Region: grid.RegionBody}
	m.sel.Select(next, next)
	m.ensureVisible(next)
	m.lines.invalidateAll()
}

// =============================================================================
// EXPORT ACTIONS
// =============================================================================

// copySelection renders the clipboard text now and writes it in a command,
// so a slow clipboard helper does not block the UI.
func (m *Model) copySelection() tea.Cmd {
	if m.clipboard == nil {
		return m.setStatus(statusError, "clipboard disabled")
	}
	text := m.service.ClipboardText(m.exportOpts.ClipboardFormat)
	rows := m.selectedRows()
	sink := m.clipboard
	return func() tea.Msg {
		return copiedMsg{ok: sink.Copy(text), rows: rows}
	}
}

func (m *Model) download(selectedOnly bool) tea.Cmd {
	if m.downloader == nil {
		return m.setStatus(statusError, "export disabled")
	}
	path, err := m.service.CSV(selectedOnly)
	if err != nil {
		m.logger.Printf("Warning: %v", err)
		return m.setStatus(statusError, err.Error())
	}
	return m.setStatus(statusOK, "saved "+filepath.Base(path))
}

func (m Model) selectedRows() int {
	if r := m.sel.RowsRangeCells(); r != nil {
		return r.Rows()
	}
	return m.table.RowCount()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// =============================================================================
// MOUSE
// =============================================================================

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-scrollStep)
		case tea.MouseButtonWheelDown:
			m.scroll(scrollStep)
		case tea.MouseButtonLeft:
			m.press(msg.X, msg.Y, msg.Shift)
		}

	case tea.MouseActionMotion:
		m.drag(msg.X, msg.Y)
		m.tracker.OnHover(m.cellAt(msg.X, msg.Y))

	case tea.MouseActionRelease:
		return m, m.release()
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	m.top += delta
	m.clampScroll()
	m.tracker.Reset()
	m.lines.invalidateAll()
}

func (m *Model) press(x, y int, shift bool) {
	c, onBorder, ok := m.columnAt(x)
	if !ok {
		return
	}

	if y < headerLines {
		switch {
		case c.col.IsIndex() && onBorder:
			// The row-number column has a fixed width.
			return
		case c.col.IsIndex():
			m.sel.SelectAll(m.table)
		case onBorder:
			*m.gesture = gesture{
				mode:       hover.ModeColumnResize,
				from:       c.pos - m.indexCount(),
				field:      c.col.Index,
				startX:     x,
				startWidth: m.columnWidth(c.col),
			}
		default:
			from := c.pos - m.indexCount()
			*m.gesture = gesture{mode: hover.ModeColumnDrag, from: from, target: from}
		}
		m.lines.invalidateAll()
		return
	}

	row, ok := m.rowAt(y)
	if !ok || onBorder {
		return
	}
	at := m.table.CoordinateAt(row, c.pos)
	if shift {
		m.sel.Extend(at)
	} else {
		m.sel.Select(at, at)
	}
	m.gesture.mode = hover.ModeSelecting
	m.lines.invalidateAll()
}

func (m *Model) drag(x, y int) {
	switch m.gesture.mode {
	case hover.ModeColumnResize:
		m.widths[m.gesture.field] = clampWidth(m.gesture.startWidth + x - m.gesture.startX)
		m.lines.invalidateAll()

	case hover.ModeColumnDrag:
		if c, _, ok := m.columnAt(x); ok && !c.col.IsIndex() {
			if target := c.pos - m.indexCount(); target != m.gesture.target {
				m.gesture.target = target
				m.lines.invalidateAll()
			}
		}

	case hover.ModeSelecting:
		c, onBorder, ok := m.columnAt(x)
		if !ok || onBorder {
			return
		}
		row, ok := m.rowAt(y)
		if !ok {
			return
		}
		m.sel.Extend(m.table.CoordinateAt(row, c.pos))
		m.lines.invalidateAll()
	}
}

func (m *Model) release() tea.Cmd {
	g := *m.gesture
	m.gesture.reset()

	switch g.mode {
	case hover.ModeColumnDrag:
		m.lines.invalidateAll()
		if g.target == g.from {
			return nil
		}
		name := m.table.Columns(grid.RegionBody)[g.from].Name
		m.table.MoveColumn(g.from, g.target)
		return m.setStatus(statusInfo, fmt.Sprintf("moved %s", name))
	case hover.ModeColumnResize:
		m.lines.invalidateAll()
	}
	return nil
}

// cellAt builds the hover event for the cell under (x, y), or nil.
func (m Model) cellAt(x, y int) *hover.Cell {
	c, onBorder, ok := m.columnAt(x)
	if !ok || onBorder {
		return nil
	}
	line := hover.Rect{X: 0, Y: float64(y), Width: float64(m.width), Height: 1}

	if y < headerLines {
		region := grid.RegionColumnHeader
		column := c.pos - m.indexCount()
		if c.col.IsIndex() {
			region, column = grid.RegionCorner, c.pos
		}
		return &hover.Cell{
			Coordinate: grid.Coordinate{Row: 0, Column: column, Region: region},
			Value:      c.col.Name,
			Row:        line,
		}
	}

	row, ok := m.rowAt(y)
	if !ok {
		return nil
	}
	records := m.table.TakeRows(row, row+1)
	if len(records) == 0 {
		return nil
	}
	return &hover.Cell{
		Coordinate: m.table.CoordinateAt(row, c.pos),
		Value:      rawValue(records[0], c.col),
		Row:        line,
	}
}

// rawValue is the unformatted value of a cell.
func rawValue(row grid.Row, col grid.Column) any {
	if col.IsIndex() {
		return row.Index()
	}
	return row.Value(col.Index)
}
