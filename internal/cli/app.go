// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/gridcopy/internal/config"
	"github.com/jeranaias/gridcopy/internal/dataset"
	"github.com/jeranaias/gridcopy/internal/export"
	"github.com/jeranaias/gridcopy/internal/grid"
)

// =============================================================================
// APP CONTEXT
// =============================================================================

// app carries what every command needs once flags are parsed.
type app struct {
	opts   *rootOptions
	cfg    *config.Config
	logger *log.Logger
}

func newApp(opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	return &app{
		opts:   opts,
		cfg:    cfg,
		logger: log.New(logOut, "[gridcopy] ", log.LstdFlags),
	}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// loadOptions merges the [grid] and [data] sections with the flags.
func (a *app) loadOptions() dataset.LoadOptions {
	opts := dataset.LoadOptions{
		IndexColumn: a.cfg.Grid.IndexColumn && !a.opts.noIndex,
		IndexTitle:  a.cfg.Grid.IndexTitle,
		Sheet:       a.cfg.Data.Sheet,
		Table:       a.cfg.Data.Table,
	}
	if a.opts.sheet != "" {
		opts.Sheet = a.opts.sheet
	}
	if a.opts.table != "" {
		opts.Table = a.opts.table
	}
	return opts
}

func (a *app) loadTable(path string) (*dataset.Table, error) {
	tbl, err := dataset.Load(path, a.loadOptions())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tbl, nil
}

// exportOptions converts the [export] section.
func (a *app) exportOptions() (*export.Options, error) {
	ec := a.cfg.Export
	format, err := export.ParseFormat(ec.Format)
	if err != nil {
		return nil, err
	}
	clipFormat, err := export.ParseFormat(ec.ClipboardFormat)
	if err != nil {
		return nil, err
	}
	lineEnding, err := export.ParseLineEnding(ec.LineEnding)
	if err != nil {
		return nil, err
	}

	opts := export.DefaultOptions()
	opts.Format = format
	opts.ClipboardFormat = clipFormat
	opts.LineEnding = lineEnding
	opts.OutputDir = ec.OutputDir
	opts.OpenAfterExport = ec.OpenAfterExport
	if ec.Filename != "" {
		opts.Filename = ec.Filename
	}
	return opts, nil
}

// clipboard picks the configured clipboard backend.
func (a *app) clipboard(out io.Writer) export.Clipboard {
	if strings.EqualFold(a.cfg.Export.Clipboard, "osc52") {
		return export.TerminalClipboard{Output: termenv.NewOutput(out)}
	}
	return export.SystemClipboard{}
}

// =============================================================================
// RANGES
// =============================================================================

// parseRange reads "r0:c0-r1:c1" into selection endpoints. Rows and body
// columns are zero-based; "#" names the row-number column. A single
// "r:c" selects one cell.
func parseRange(s string, tbl *dataset.Table) (anchor, focus grid.Coordinate, err error) {
	invalid := func(reason string) error {
		return &ValidationError{
			Field:   "--range",
			Value:   s,
			Reason:  reason,
			Example: "--range 0:0-9:2 or --range 0:#-4:1",
		}
	}

	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) > 2 || parts[0] == "" {
		return anchor, focus, invalid("expected r0:c0-r1:c1")
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	ends := make([]grid.Coordinate, 2)
	for i, p := range parts {
		row, col, ok := strings.Cut(p, ":")
		if !ok {
			return anchor, focus, invalid("expected row:column in " + strconv.Quote(p))
		}
		c, reason := parseCell(strings.TrimSpace(row), strings.TrimSpace(col), tbl)
		if reason != "" {
			return anchor, focus, invalid(reason)
		}
		ends[i] = c
	}
	return ends[0], ends[1], nil
}

func parseCell(row, col string, tbl *dataset.Table) (grid.Coordinate, string) {
	r, err := strconv.Atoi(row)
	if err != nil || r < 0 {
		return grid.Coordinate{}, fmt.Sprintf("bad row %q", row)
	}
	if r >= tbl.RowCount() {
		return grid.Coordinate{}, fmt.Sprintf("row %d out of range (table has %d rows)", r, tbl.RowCount())
	}

	if col == "#" {
		if !tbl.HasIndex() {
			return grid.Coordinate{}, "row-number column is hidden"
		}
		return grid.Coordinate{Row: r, Column: 0, Region: grid.RegionRowHeader}, ""
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 0 {
		return grid.Coordinate{}, fmt.Sprintf("bad column %q", col)
	}
	if n := len(tbl.Columns(grid.RegionBody)); c >= n {
		return grid.Coordinate{}, fmt.Sprintf("column %d out of range (table has %d columns)", c, n)
	}
	return grid.Coordinate{Row: r, Column: c, Region: grid.RegionBody}, ""
}

// selectRange applies --range to a fresh selection. It reports whether a
// range was given.
func selectRange(s string, tbl *dataset.Table) (*dataset.Selection, bool, error) {
	sel := dataset.NewSelection()
	if s == "" {
		return sel, false, nil
	}
	anchor, focus, err := parseRange(s, tbl)
	if err != nil {
		return nil, false, err
	}
	sel.Select(anchor, focus)
	return sel, true, nil
}
