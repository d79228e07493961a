// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"strconv"

	"github.com/jeranaias/gridcopy/internal/grid"
	"github.com/jeranaias/gridcopy/internal/util"
)

const (
	minColumnWidth = 3
	maxColumnWidth = 200

	// headerLines is the number of screen lines above the first body row.
	headerLines = 1
	// footerLines is the status bar.
	footerLines = 1
)

// column is one drawn column. Every column is followed by a one-cell
// separator at x+width.
type column struct {
	pos   int
	col   grid.Column
	x     int
	width int
}

func clampWidth(w int) int {
	return max(minColumnWidth, min(w, maxColumnWidth))
}

func (m Model) bodyHeight() int {
	return max(0, m.height-headerLines-footerLines)
}

func (m Model) indexCount() int {
	return len(m.table.Columns(grid.RegionRowHeader))
}

func (m Model) bodyCount() int {
	return len(m.table.Columns(grid.RegionBody))
}

// computeIndexWidth fits the index title and the largest row number.
func (m Model) computeIndexWidth() int {
	w := 1
	for _, c := range m.table.Columns(grid.RegionRowHeader) {
		w = max(w, util.Width(c.Name))
	}
	if n := m.table.RowCount(); n > 0 {
		w = max(w, len(strconv.Itoa(n-1)))
	}
	return w
}

func (m Model) columnWidth(c grid.Column) int {
	if c.IsIndex() {
		return m.indexWidth
	}
	if w, ok := m.widths[c.Index]; ok {
		return w
	}
	return m.defaultWidth
}

// visibleColumns lays out the frozen index columns followed by the body
// columns starting at m.left. The last column may be clipped.
func (m Model) visibleColumns() []column {
	all := m.table.DisplayColumns()
	var out []column
	x := 0
	add := func(pos int) bool {
		if x >= m.width {
			return false
		}
		w := m.columnWidth(all[pos])
		if x+w > m.width {
			w = m.width - x
		}
		out = append(out, column{pos: pos, col: all[pos], x: x, width: w})
		x += w + 1
		return true
	}

	nIndex := m.indexCount()
	for pos := 0; pos < nIndex && pos < len(all); pos++ {
		if !add(pos) {
			return out
		}
	}
	for pos := nIndex + m.left; pos < len(all); pos++ {
		if !add(pos) {
			break
		}
	}
	return out
}

// columnAt finds the column under x. onBorder is true when x is the
// separator right of the column.
func (m Model) columnAt(x int) (c column, onBorder bool, ok bool) {
	for _, vc := range m.visibleColumns() {
		switch {
		case x >= vc.x && x < vc.x+vc.width:
			return vc, false, true
		case x == vc.x+vc.width:
			return vc, true, true
		}
	}
	return column{}, false, false
}

// rowAt maps a screen line to a record index.
func (m Model) rowAt(y int) (int, bool) {
	if y < headerLines || y >= headerLines+m.bodyHeight() {
		return 0, false
	}
	row := m.top + y - headerLines
	if row >= m.table.RowCount() {
		return 0, false
	}
	return row, true
}

func (m Model) fullyVisible(pos int) bool {
	for _, c := range m.visibleColumns() {
		if c.pos == pos {
			return c.width == m.columnWidth(c.col)
		}
	}
	return false
}

// ensureVisible scrolls so that c is on screen.
func (m *Model) ensureVisible(c grid.Coordinate) {
	if h := m.bodyHeight(); h > 0 {
		if c.Row < m.top {
			m.top = c.Row
		} else if c.Row >= m.top+h {
			m.top = c.Row - h + 1
		}
	}

	if c.Region != grid.RegionBody {
		return
	}
	if c.Column < m.left {
		m.left = c.Column
		return
	}
	pos := m.table.Position(c)
	for m.left < c.Column && !m.fullyVisible(pos) {
		m.left++
	}
}

// clampScroll keeps the window inside the table.
func (m *Model) clampScroll() {
	m.top = max(0, min(m.top, m.table.RowCount()-m.bodyHeight()))
	m.left = max(0, min(m.left, m.bodyCount()-1))
}
