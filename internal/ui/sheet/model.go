// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gridcopy/internal/dataset"
	"github.com/jeranaias/gridcopy/internal/export"
	"github.com/jeranaias/gridcopy/internal/hover"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
)

// statusTimeout is how long a status message stays in the status bar.
const statusTimeout = 4 * time.Second

// scrollStep is the number of rows one wheel notch scrolls.
const scrollStep = 3

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures the grid model.
type Options struct {
	// Source is shown in the status bar.
	Source string

	// Theme for rendering. Default: styles.NewTheme("auto")
	Theme *styles.Theme

	// Export options shared by copy and download.
	// Default: export.DefaultOptions()
	Export *export.Options

	// Clipboard receives copied selections. Nil disables copying.
	Clipboard export.Clipboard

	// Downloader receives exported files. Nil disables exporting.
	Downloader export.Downloader

	// ColumnWidth is the initial width of every body column.
	// Default: 16
	ColumnWidth int

	// Loader re-reads the source on ReloadMsg. Nil disables reloading.
	Loader func() (*dataset.Table, error)

	// Logger receives warnings. Default: discard
	Logger *log.Logger

	// Keys overrides the default key map.
	Keys *KeyMap
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model of the grid view.
type Model struct {
	table     *dataset.Table
	sel       *dataset.Selection
	service   *export.Service
	clipboard *export.ClipboardSink

	exportOpts *export.Options
	downloader export.Downloader
	loader     func() (*dataset.Table, error)
	source     string
	logger     *log.Logger
	theme      *styles.Theme
	keys       KeyMap

	// Shared with the hover tracker, so these survive model copies.
	tracker *hover.Tracker
	lines   *lineCache
	gesture *gesture
	pointer *pointer
	gate    *keyGate

	widths       map[int]int
	defaultWidth int
	indexWidth   int

	top, left     int
	width, height int

	status     string
	statusKind statusKind
	statusSeq  int

	quitting bool
}

// New creates a grid over tbl.
func New(tbl *dataset.Table, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(styles.ThemeAuto)
	}
	if opts.Export == nil {
		opts.Export = export.DefaultOptions()
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = 16
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	m := Model{
		sel:          dataset.NewSelection(),
		exportOpts:   opts.Export,
		downloader:   opts.Downloader,
		loader:       opts.Loader,
		source:       opts.Source,
		logger:       opts.Logger,
		theme:        opts.Theme,
		keys:         keys,
		lines:        newLineCache(),
		gesture:      &gesture{},
		pointer:      &pointer{},
		gate:         &keyGate{},
		widths:       make(map[int]int),
		defaultWidth: clampWidth(opts.ColumnWidth),
	}
	m.tracker = hover.NewTracker(m.lines, m.gesture, m.pointer)
	if opts.Clipboard != nil {
		m.clipboard = export.NewClipboardSink(opts.Clipboard, m.gate, m.logger)
	}
	m.setTable(tbl)
	return m
}

// setTable swaps the dataset. The selection and hover state are dropped.
func (m *Model) setTable(tbl *dataset.Table) {
	m.table = tbl
	m.sel.Clear()
	m.service = export.NewService(tbl, tbl, m.sel, m.exportOpts).
		WithClipboard(m.clipboard).
		WithDownloader(m.downloader)
	m.indexWidth = m.computeIndexWidth()
	m.clampScroll()
	m.tracker.Reset()
	m.lines.invalidateAll()
}

// Table returns the displayed table.
func (m Model) Table() *dataset.Table {
	return m.table
}

// Selection returns the live selection.
func (m Model) Selection() *dataset.Selection {
	return m.sel
}

// Service returns the export service bound to the current table.
func (m Model) Service() *export.Service {
	return m.service
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.clampScroll()
		m.tracker.Reset()
		m.lines.invalidateAll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ReloadMsg:
		return m, m.reload()

	case tableLoadedMsg:
		if msg.err != nil {
			m.logger.Printf("Warning: reload failed: %v", msg.err)
			return m, m.setStatus(statusError, "reload failed: "+msg.err.Error())
		}
		m.setTable(msg.table)
		return m, m.setStatus(statusInfo, "reloaded")

	case copiedMsg:
		if !msg.ok {
			return m, m.setStatus(statusError, "clipboard unavailable")
		}
		return m, m.setStatus(statusOK, "copied "+plural(msg.rows, "row"))

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(kind statusKind, text string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.status = text
	m.statusKind = kind
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) reload() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader := m.loader
	return func() tea.Msg {
		tbl, err := loader()
		return tableLoadedMsg{table: tbl, err: err}
	}
}
