// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"

	"github.com/jeranaias/gridcopy/internal/grid"
	"github.com/jeranaias/gridcopy/internal/matrix"
)

// =============================================================================
// EXPORT SERVICE
// =============================================================================

// Service wires selection resolution, matrix building and serialization to
// the export sinks.
type Service struct {
	resolver *matrix.Resolver
	builder  *matrix.Builder
	exporter *TabularExporter
	options  *Options

	clipboard  *ClipboardSink
	downloader Downloader
}

// NewService creates a service over the given managers. Sinks are attached
// with WithClipboard and WithDownloader.
func NewService(rows grid.RowManager, cols grid.ColumnManager, sel grid.SelectionManager, opts *Options) *Service {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Service{
		resolver: matrix.NewResolver(rows, cols, sel),
		builder:  matrix.NewBuilder(rows, cols),
		exporter: NewTabularExporter(opts.LineEnding),
		options:  opts,
	}
}

// WithClipboard attaches the clipboard sink.
func (s *Service) WithClipboard(sink *ClipboardSink) *Service {
	s.clipboard = sink
	return s
}

// WithDownloader attaches the download sink.
func (s *Service) WithDownloader(d Downloader) *Service {
	s.downloader = d
	return s
}

// Options returns the service options.
func (s *Service) Options() *Options {
	return s.options
}

// Text renders the active selection, or the whole dataset when selectedOnly
// is false. With selectedOnly and no selection the result is empty.
func (s *Service) Text(selectedOnly bool, format Format) string {
	var sel matrix.Selection
	if selectedOnly {
		var ok bool
		if sel, ok = s.resolver.SelectedCells(); !ok {
			return ""
		}
	} else {
		sel = s.resolver.AllCells()
	}
	return s.render(sel, format)
}

// ClipboardText renders the active selection, falling back to the whole
// dataset when nothing is selected.
func (s *Service) ClipboardText(format Format) string {
	sel, ok := s.resolver.SelectedCells()
	if !ok {
		sel = s.resolver.AllCells()
	}
	return s.render(sel, format)
}

func (s *Service) render(sel matrix.Selection, format Format) string {
	m := s.builder.Cells(sel.Rows, sel.Columns)
	return s.exporter.ExportCellsTo(m, format, sel.HasIndex())
}

// CSV exports the selection when selectedOnly is true, otherwise the whole
// dataset, and hands it to the downloader. It returns where the file went.
func (s *Service) CSV(selectedOnly bool) (string, error) {
	if s.downloader == nil {
		return "", fmt.Errorf("export: no downloader configured")
	}
	payload := Payload{
		Filename: s.options.Filename,
		MimeType: s.options.Format.MimeType(),
		Data:     []byte(s.Text(selectedOnly, s.options.Format)),
	}
	if payload.Filename == "" {
		payload.Filename = DefaultFilename
	}

	path, err := s.downloader.Download(payload)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return path, nil
}

// CopyToClipboard copies the selection, or everything when nothing is
// selected. It reports whether the text reached the clipboard; a missing or
// unsupported clipboard is a silent no-op.
func (s *Service) CopyToClipboard() bool {
	if s.clipboard == nil {
		return false
	}
	return s.clipboard.Copy(s.ClipboardText(s.options.ClipboardFormat))
}
