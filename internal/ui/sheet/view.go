// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/gridcopy/internal/grid"
	"github.com/jeranaias/gridcopy/internal/hover"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
	"github.com/jeranaias/gridcopy/internal/util"
)

const (
	separator       = "│"
	resizeSeparator = "┃"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	cols := m.visibleColumns()
	h := m.bodyHeight()
	lines := make([]string, 0, h+headerLines+footerLines)

	lines = append(lines, m.lines.get(0, func() string {
		return m.renderHeader(cols)
	}))

	rows := m.table.TakeRows(m.top, m.top+h)
	for i := 0; i < h; i++ {
		y := headerLines + i
		if i >= len(rows) {
			lines = append(lines, "")
			continue
		}
		row := rows[i]
		lines = append(lines, m.lines.get(y, func() string {
			return m.renderRow(row, y, cols)
		}))
	}

	lines = append(lines, m.renderStatus())
	return strings.Join(lines, "\n")
}

// =============================================================================
// GRID
// =============================================================================

func (m Model) renderHeader(cols []column) string {
	var b strings.Builder
	nIndex := m.indexCount()

	for _, c := range cols {
		style := m.theme.ColumnHeader
		if c.col.IsIndex() {
			style = m.theme.Corner
		}
		bodyPos := c.pos - nIndex

		switch {
		case m.gesture.mode == hover.ModeColumnDrag && !c.col.IsIndex() && bodyPos == m.gesture.target:
			style = m.theme.DragTarget
		case !c.col.IsIndex() && m.tracker.IsHovered(grid.Coordinate{Column: bodyPos, Region: grid.RegionColumnHeader}):
			style = m.theme.Hovered.Bold(true)
		}
		b.WriteString(style.Render(util.Fit(util.SingleLine(c.col.Name), c.width)))

		sep := m.theme.Separator.Render(separator)
		if m.gesture.mode == hover.ModeColumnResize && !c.col.IsIndex() && bodyPos == m.gesture.from {
			sep = m.theme.ResizeHandle.Render(resizeSeparator)
		}
		b.WriteString(sep)
	}
	return b.String()
}

func (m Model) renderRow(row grid.Row, y int, cols []column) string {
	var b strings.Builder
	hovered, isHovering := m.tracker.Hovered()
	rowHovered := isHovering && hovered.Row.Y == float64(y) &&
		(hovered.Region == grid.RegionBody || hovered.Region == grid.RegionRowHeader)

	for _, c := range cols {
		region := grid.RegionBody
		if c.col.IsIndex() {
			region = grid.RegionRowHeader
		}
		raw := rawValue(row, c.col)
		cfg := grid.NewCellConfig(
			grid.WithRow(row.Index()),
			grid.WithColumn(c.col.Index),
			grid.WithRegion(region),
			grid.WithValue(raw),
			grid.WithGeometry(float64(c.x), float64(y), float64(c.width), 1),
		)
		text := util.Fit(util.SingleLine(c.col.FormatCell(cfg)), c.width)

		coord := m.table.CoordinateAt(row.Index(), c.pos)
		b.WriteString(m.cellStyle(coord, raw, rowHovered).Render(text))
		b.WriteString(m.theme.Separator.Render(separator))
	}
	return b.String()
}

func (m Model) cellStyle(c grid.Coordinate, raw any, rowHovered bool) lipgloss.Style {
	selected := m.sel.Contains(m.table, c)
	switch {
	case selected && rowHovered:
		return m.theme.HoveredSelected
	case selected:
		return m.theme.Selected
	case c.Region == grid.RegionRowHeader:
		if rowHovered {
			return m.theme.RowHeader.Bold(true)
		}
		return m.theme.RowHeader
	case hover.IsURL(grid.Stringify(raw)):
		return m.theme.Link
	case rowHovered:
		return m.theme.Hovered
	default:
		return m.theme.Cell
	}
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatus() string {
	var parts []string
	if m.source != "" {
		parts = append(parts, m.source)
	}
	parts = append(parts, plural(m.table.RowCount(), "row"))

	if r := m.sel.RowsRangeCells(); r != nil {
		cols := m.table.TakeColumnsByCells(r.Start, r.End)
		parts = append(parts, fmt.Sprintf("sel %dx%d", r.Rows(), len(cols)))
	}

	if m.status != "" {
		parts = append(parts, m.renderMessage())
	} else if link := m.hoveredLink(); link != "" {
		parts = append(parts, m.theme.StatusMuted.Render("link ")+termenv.Hyperlink(link, link))
	} else if m.theme.GetLayoutMode() != styles.LayoutNarrow {
		parts = append(parts, m.renderShortcuts())
	}

	return m.theme.StatusBar.
		Width(m.width).
		MaxHeight(1).
		Render(strings.Join(parts, "  "))
}

func (m Model) renderMessage() string {
	switch m.statusKind {
	case statusOK:
		return m.theme.StatusOK.Render(styles.StatusIndicators.Success + " " + m.status)
	case statusError:
		return m.theme.StatusError.Render(styles.StatusIndicators.Error + " " + m.status)
	default:
		return m.theme.StatusMuted.Render(m.status)
	}
}

func (m Model) renderShortcuts() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// hoveredLink returns the hovered URL while the pointer cursor is shown.
func (m Model) hoveredLink() string {
	if m.pointer.cursor != hover.CursorPointer {
		return ""
	}
	c, ok := m.tracker.Hovered()
	if !ok {
		return ""
	}
	return strings.TrimSpace(grid.Stringify(c.Value))
}
