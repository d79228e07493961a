// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeranaias/gridcopy/internal/dataset"
	"github.com/jeranaias/gridcopy/internal/export"
	"github.com/jeranaias/gridcopy/internal/ui/sheet"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
)

const (
	debugLogFile  = "gridcopy-debug.log"
	watchDebounce = 250 * time.Millisecond
)

func newViewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Open a dataset in the interactive grid",
		Long: `Open a CSV, TSV, XLSX or SQLite file in the interactive grid.

Mouse: click and drag to select, shift-click to extend, drag a header to
move a column, drag a header border to resize it, click the corner to
select everything. Keys: y copies, e saves the selection, E saves all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, args[0])
		},
	}
}

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runView(cmd *cobra.Command, opts *rootOptions, path string) error {
	if !isInteractive() {
		return &ValidationError{
			Field:   "terminal",
			Reason:  "the grid needs an interactive terminal",
			Example: "gridcopy export " + path + " --stdout",
		}
	}

	// The grid owns the terminal, so logs go to a file or nowhere.
	logOut := io.Discard
	if opts.debug {
		f, err := tea.LogToFile(debugLogFile, "gridcopy")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	a, err := newApp(opts, logOut)
	if err != nil {
		return err
	}
	tbl, err := a.loadTable(path)
	if err != nil {
		return err
	}
	exportOpts, err := a.exportOptions()
	if err != nil {
		return err
	}

	out := &syncOutput{File: os.Stdout}
	model := sheet.New(tbl, sheet.Options{
		Source:      filepath.Base(path),
		Theme:       styles.NewTheme(a.cfg.Grid.Theme),
		Export:      exportOpts,
		Clipboard:   a.clipboard(out),
		Downloader:  export.NewFileSink(exportOpts, a.logger),
		ColumnWidth: a.cfg.Grid.ColumnWidth,
		Loader: func() (*dataset.Table, error) {
			return a.loadTable(path)
		},
		Logger: a.logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover needs motion without a button held
	)

	if a.cfg.Grid.WatchSource {
		stop := watchSource(p, path, a.logger)
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return &CommandError{Command: "view", Reason: "grid exited", Err: err}
	}
	return nil
}

// syncOutput is the terminal shared by the renderer and the OSC 52
// clipboard, which writes from a command goroutine. Each Write lands whole.
type syncOutput struct {
	*os.File
	mu sync.Mutex
}

func (o *syncOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

// watchSource reloads the grid whenever path changes on disk. A watcher
// that cannot start only costs live reload.
func watchSource(p *tea.Program, path string, logger *log.Logger) (stop func()) {
	w, err := dataset.NewWatcher([]string{path}, watchDebounce, func(changed string) {
		p.Send(sheet.ReloadMsg{Path: changed})
	}, logger)
	if err != nil {
		logger.Printf("Warning: live reload disabled: %v", err)
		return func() {}
	}
	w.Start()
	return func() {
		if err := w.Close(); err != nil {
			logger.Printf("Warning: close watcher: %v", err)
		}
	}
}
