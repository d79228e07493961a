// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/gridcopy/internal/dataset"
	"github.com/jeranaias/gridcopy/internal/export"
	"github.com/jeranaias/gridcopy/internal/grid"
	"github.com/jeranaias/gridcopy/internal/hover"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
)

// =============================================================================
// HELPERS
// =============================================================================

type fakeClipboard struct {
	gate     *keyGate
	failures int
	writes   []string
	// suppressedOnWrite records whether keys were gated during each write.
	suppressedOnWrite []bool
}

func (c *fakeClipboard) Supported() bool { return true }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.gate != nil {
		c.suppressedOnWrite = append(c.suppressedOnWrite, c.gate.suppressed())
	}
	if c.failures > 0 {
		c.failures--
		return errors.New("clipboard busy")
	}
	c.writes = append(c.writes, text)
	return nil
}

type memoryDownloader struct {
	last export.Payload
}

func (d *memoryDownloader) Download(p export.Payload) (string, error) {
	d.last = p
	return "/tmp/out/" + p.Filename, nil
}

func testTheme() *styles.Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return styles.NewThemeWithRenderer(r, styles.ThemeDark)
}

func peopleTable() *dataset.Table {
	return dataset.NewTable(
		[]string{"Name", "Site"},
		[][]any{
			{"Ann", "https://ann.example"},
			{"Bob", "bob"},
			{"Cyd", nil},
		},
		dataset.WithIndexColumn("#"),
	)
}

func tallTable(n int) *dataset.Table {
	records := make([][]any, n)
	for i := range records {
		records[i] = []any{fmt.Sprintf("r%d", i), i}
	}
	return dataset.NewTable([]string{"Key", "N"}, records, dataset.WithIndexColumn("#"))
}

func testOptions() Options {
	opts := export.DefaultOptions()
	opts.LineEnding = export.LineEndingLF
	return Options{
		Theme:       testTheme(),
		Export:      opts,
		ColumnWidth: 10,
	}
}

// newTestModel lays out:
//
//	x: 0     index (width 1), separator at 1
//	x: 2-11  Name, separator at 12
//	x: 13-22 Site, separator at 23
func newTestModel(t *testing.T, tbl *dataset.Table, opts Options) Model {
	t.Helper()
	return update(New(tbl, opts), tea.WindowSizeMsg{Width: 60, Height: 8})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func press(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
}

func motion(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionMotion, tea.MouseButtonNone, x, y)
}

func release(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, y)
}

// =============================================================================
// RENDERING
// =============================================================================

func TestViewRendersHeaderRowsAndStatus(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "#│Name      │Site      │"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0│Ann       │https://a…│"), lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "2│Cyd       │          │"), lines[3])
	assert.Equal(t, "", lines[4])
	assert.Contains(t, lines[7], "3 rows")
}

func TestViewBeforeSizeIsEmpty(t *testing.T) {
	m := New(peopleTable(), testOptions())
	assert.Equal(t, "", m.View())
}

func TestFormatterIsApplied(t *testing.T) {
	tbl := dataset.NewTable(
		[]string{"Price"},
		[][]any{{12.5}},
		dataset.WithFormatter("Price", func(cfg grid.CellFormatConfig) string {
			return fmt.Sprintf("$%.2f", cfg.Value)
		}),
	)
	m := newTestModel(t, tbl, testOptions())
	lines := strings.Split(m.View(), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "$12.50"), lines[1])
}

func TestOnlyInvalidatedLinesRerender(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m.View()
	base := m.lines.renders
	assert.Equal(t, 4, base, "header plus three rows")

	m.View()
	assert.Equal(t, base, m.lines.renders, "nothing changed")

	// Hovering a row repaints only that row.
	m = update(m, motion(3, 1))
	m.View()
	assert.Equal(t, base+1, m.lines.renders)

	// Another cell in the same row repaints that row again.
	m = update(m, motion(14, 1))
	m.View()
	assert.Equal(t, base+2, m.lines.renders)

	// Same cell: no repaint.
	m = update(m, motion(15, 1))
	m.View()
	assert.Equal(t, base+2, m.lines.renders)

	// Moving down a row repaints the previous row and the new one.
	m = update(m, motion(3, 2))
	m.View()
	assert.Equal(t, base+4, m.lines.renders)
}

// =============================================================================
// KEYBOARD
// =============================================================================

func TestKeyboardSelection(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	focus, ok := m.Selection().Focus()
	require.True(t, ok)
	assert.Equal(t, grid.Coordinate{Row: 1, Column: 0, Region: grid.RegionBody}, focus)

	m = update(m, tea.KeyMsg{Type: tea.KeyShiftDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	r := m.Selection().RowsRangeCells()
	require.NotNil(t, r)
	assert.Equal(t, 2, r.Rows())
	assert.Equal(t, grid.Coordinate{Row: 2, Column: 1, Region: grid.RegionBody}, r.End)

	// Moving right past the last column stays put.
	m = update(m, keyRunes("l"))
	m = update(m, keyRunes("l"))
	focus, _ = m.Selection().Focus()
	assert.Equal(t, 1, focus.Column)

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	r = m.Selection().RowsRangeCells()
	require.NotNil(t, r)
	assert.Equal(t, grid.RegionRowHeader, r.Start.Region)
	assert.Equal(t, 3, r.Rows())

	m = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.Selection().Active())
}

func TestEndScrollsToLastRow(t *testing.T) {
	m := newTestModel(t, tallTable(20), testOptions())

	m = update(m, keyRunes("G"))
	assert.Equal(t, 14, m.top, "six body lines, last row at the bottom")
	focus, _ := m.Selection().Focus()
	assert.Equal(t, 19, focus.Row)

	m = update(m, keyRunes("g"))
	assert.Equal(t, 0, m.top)
}

func TestKeyboardColumnResizeAndMove(t *testing.T) {
	tbl := peopleTable()
	m := newTestModel(t, tbl, testOptions())

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, keyRunes("+"))
	assert.Equal(t, 12, m.widths[0])

	m = update(m, keyRunes("]"))
	body := tbl.Columns(grid.RegionBody)
	assert.Equal(t, "Site", body[0].Name)
	assert.Equal(t, "Name", body[1].Name)
	focus, _ := m.Selection().Focus()
	assert.Equal(t, 1, focus.Column, "focus follows the moved column")
}

func TestGateDropsKeys(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	restore := m.gate.Suppress()
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, m.Selection().Active())

	restore()
	restore()
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, m.Selection().Active())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m, cmd := updateCmd(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", m.View())
}

// =============================================================================
// COPY AND EXPORT
// =============================================================================

func TestCopySelectionToClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	opts := testOptions()
	opts.Clipboard = cb
	m := newTestModel(t, peopleTable(), opts)

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m, cmd := updateCmd(m, keyRunes("y"))
	require.NotNil(t, cmd)

	m = update(m, cmd())
	require.Len(t, cb.writes, 1)
	assert.Equal(t, "Name\tSite\nAnn\thttps://ann.example\nBob\tbob\nCyd\t\n", cb.writes[0])
	assert.Equal(t, "copied 3 rows", m.Status())
}

func TestCopyWithoutSelectionCopiesEverything(t *testing.T) {
	cb := &fakeClipboard{}
	opts := testOptions()
	opts.Clipboard = cb
	m := newTestModel(t, peopleTable(), opts)

	_, cmd := updateCmd(m, keyRunes("y"))
	cmd()
	require.Len(t, cb.writes, 1)
	assert.Equal(t, "Name\tSite\nAnn\thttps://ann.example\nBob\tbob\nCyd\t\n", cb.writes[0])
}

func TestCopyRetriesWithKeysGated(t *testing.T) {
	cb := &fakeClipboard{failures: 1}
	opts := testOptions()
	opts.Clipboard = cb
	m := newTestModel(t, peopleTable(), opts)
	cb.gate = m.gate

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := updateCmd(m, keyRunes("y"))
	msg := cmd()

	assert.Equal(t, []bool{false, true}, cb.suppressedOnWrite)
	assert.Equal(t, []string{"Bob\n"}, cb.writes)
	assert.False(t, m.gate.suppressed(), "gate restored after the retry")
	assert.Equal(t, copiedMsg{ok: true, rows: 1}, msg)
}

func TestCopyFailureShowsStatus(t *testing.T) {
	cb := &fakeClipboard{failures: 2}
	opts := testOptions()
	opts.Clipboard = cb
	m := newTestModel(t, peopleTable(), opts)

	m, cmd := updateCmd(m, keyRunes("y"))
	m = update(m, cmd())
	assert.Equal(t, "clipboard unavailable", m.Status())
}

func TestExportSelection(t *testing.T) {
	dl := &memoryDownloader{}
	opts := testOptions()
	opts.Downloader = dl
	m := newTestModel(t, peopleTable(), opts)

	m = update(m, keyRunes("e"))
	assert.Equal(t, "nothing selected", m.Status())

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	m = update(m, keyRunes("e"))
	assert.Equal(t, "saved tableRows.csv", m.Status())
	assert.Equal(t, "\"Name\",\"Site\"\n\"Bob\",\"bob\"\n", string(dl.last.Data))

	m = update(m, keyRunes("E"))
	assert.Equal(t, "\"Name\",\"Site\"\n\"Ann\",\"https://ann.example\"\n\"Bob\",\"bob\"\n\"Cyd\",\"\"\n", string(dl.last.Data))
}

func TestExportDisabledWithoutDownloader(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m = update(m, keyRunes("E"))
	assert.Equal(t, "export disabled", m.Status())
}

func TestStaleStatusClearIsIgnored(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m = update(m, keyRunes("e"))
	first := m.statusSeq
	m = update(m, keyRunes("E"))

	m = update(m, clearStatusMsg{seq: first})
	assert.Equal(t, "export disabled", m.Status())

	m = update(m, clearStatusMsg{seq: m.statusSeq})
	assert.Equal(t, "", m.Status())
}

// =============================================================================
// MOUSE
// =============================================================================

func TestHoverTracksCellsAndLinks(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	m = update(m, motion(14, 1))
	c, ok := m.tracker.Hovered()
	require.True(t, ok)
	assert.Equal(t, grid.Coordinate{Row: 0, Column: 1, Region: grid.RegionBody}, c.Coordinate)
	assert.Equal(t, hover.CursorPointer, m.pointer.cursor)
	assert.Contains(t, m.View(), "https://ann.example")

	m = update(m, motion(3, 2))
	assert.Equal(t, hover.CursorDefault, m.pointer.cursor)

	// Off the grid.
	m = update(m, motion(59, 6))
	_, ok = m.tracker.Hovered()
	assert.False(t, ok)
}

func TestHoverOverHeaders(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	m = update(m, motion(0, 0))
	c, ok := m.tracker.Hovered()
	require.True(t, ok)
	assert.Equal(t, grid.RegionCorner, c.Region)

	m = update(m, motion(5, 0))
	c, _ = m.tracker.Hovered()
	assert.Equal(t, grid.RegionColumnHeader, c.Region)
	assert.Equal(t, "Name", c.Value)
}

func TestDragSelectsRectangle(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	m = update(m, press(3, 1))
	assert.Equal(t, hover.ModeSelecting, m.gesture.Mode())
	m = update(m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 15, 3))
	m = update(m, release(15, 3))
	assert.Equal(t, hover.ModeIdle, m.gesture.Mode())

	r := m.Selection().RowsRangeCells()
	require.NotNil(t, r)
	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, grid.Coordinate{Row: 0, Column: 0, Region: grid.RegionBody}, r.Start)
	assert.Equal(t, grid.Coordinate{Row: 2, Column: 1, Region: grid.RegionBody}, r.End)

	// Hover keeps working while selecting.
	c, ok := m.tracker.Hovered()
	require.True(t, ok)
	assert.Equal(t, 2, c.Coordinate.Row)
}

func TestHeaderBorderDragResizes(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())

	m = update(m, press(12, 0))
	assert.Equal(t, hover.ModeColumnResize, m.gesture.Mode())
	assert.Contains(t, strings.Split(m.View(), "\n")[0], "┃")

	m = update(m, motion(16, 2))
	assert.Equal(t, 14, m.widths[0])
	_, hovering := m.tracker.Hovered()
	assert.False(t, hovering, "hover is suppressed while resizing")

	m = update(m, motion(0, 2))
	assert.Equal(t, minColumnWidth, m.widths[0])

	m = update(m, release(0, 2))
	assert.Equal(t, hover.ModeIdle, m.gesture.Mode())
}

func TestHeaderDragReordersColumns(t *testing.T) {
	tbl := peopleTable()
	m := newTestModel(t, tbl, testOptions())

	m = update(m, press(4, 0))
	assert.Equal(t, hover.ModeColumnDrag, m.gesture.Mode())
	m = update(m, motion(15, 0))
	assert.Equal(t, 1, m.gesture.target)

	m = update(m, release(15, 0))
	body := tbl.Columns(grid.RegionBody)
	assert.Equal(t, []string{"Site", "Name"}, []string{body[0].Name, body[1].Name})
	assert.Equal(t, "moved Name", m.Status())

	lines := strings.Split(m.View(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "#│Site      │Name      │"), lines[0])
}

func TestCornerPressSelectsAll(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m = update(m, press(0, 0))

	r := m.Selection().RowsRangeCells()
	require.NotNil(t, r)
	assert.Equal(t, 3, r.Rows())
}

func TestIndexBorderPressIsIgnored(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	m = update(m, press(1, 0))

	assert.Nil(t, m.Selection().RowsRangeCells())
	assert.Equal(t, hover.ModeIdle, m.gesture.Mode())
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t, tallTable(20), testOptions())

	m = update(m, mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 5, 3))
	assert.Equal(t, 3, m.top)
	for i := 0; i < 10; i++ {
		m = update(m, mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 5, 3))
	}
	assert.Equal(t, 14, m.top)

	m = update(m, mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 5, 3))
	assert.Equal(t, 11, m.top)
	lines := strings.Split(m.View(), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "11│r11"), lines[1])
}

// =============================================================================
// RELOAD
// =============================================================================

func TestReloadReplacesTable(t *testing.T) {
	opts := testOptions()
	opts.Loader = func() (*dataset.Table, error) {
		return dataset.NewTable([]string{"Only"}, [][]any{{"x"}}), nil
	}
	m := newTestModel(t, peopleTable(), opts)
	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlA})

	m, cmd := updateCmd(m, ReloadMsg{Path: "people.csv"})
	require.NotNil(t, cmd)
	m = update(m, cmd())

	assert.Equal(t, 1, m.Table().RowCount())
	assert.False(t, m.Selection().Active())
	assert.Equal(t, "reloaded", m.Status())
	// A single cell exports without its header.
	assert.Equal(t, "x\n", m.Service().Text(false, export.FormatTSV))
}

func TestReloadFailureKeepsTable(t *testing.T) {
	opts := testOptions()
	opts.Loader = func() (*dataset.Table, error) {
		return nil, errors.New("parse error")
	}
	m := newTestModel(t, peopleTable(), opts)

	m, cmd := updateCmd(m, keyRunes("r"))
	m = update(m, cmd())
	assert.Equal(t, 3, m.Table().RowCount())
	assert.Equal(t, "reload failed: parse error", m.Status())
}

func TestReloadWithoutLoaderIsNoop(t *testing.T) {
	m := newTestModel(t, peopleTable(), testOptions())
	_, cmd := updateCmd(m, ReloadMsg{})
	assert.Nil(t, cmd)
}
