// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/gridcopy/internal/export"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
)

// =============================================================================
// EXPORT COMMAND
// =============================================================================

type exportFlags struct {
	rangeSpec string
	format    string
	outDir    string
	filename  string
	stdout    bool
	open      bool
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Save a range, or the whole dataset, as CSV or TSV",
		Example: `  gridcopy export people.csv
  gridcopy export report.xlsx --sheet Q3 --range 0:0-9:2 --out ./exports
  gridcopy export app.db --table users --format tsv --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, f, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.rangeSpec, "range", "", "Cells to export as r0:c0-r1:c1 (\"#\" is the row-number column)")
	flags.StringVar(&f.format, "format", "", "Output format: csv or tsv (default from config)")
	flags.StringVarP(&f.outDir, "out", "o", "", "Output directory (default from config)")
	flags.StringVar(&f.filename, "filename", "", "Output file name (default from config)")
	flags.BoolVar(&f.stdout, "stdout", false, "Write to stdout instead of a file")
	flags.BoolVar(&f.open, "open", false, "Open the file after saving")
	return cmd
}

func runExport(cmd *cobra.Command, opts *rootOptions, f *exportFlags, path string) error {
	a, err := newApp(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	exportOpts, err := a.exportOptions()
	if err != nil {
		return err
	}
	if f.format != "" {
		if exportOpts.Format, err = export.ParseFormat(f.format); err != nil {
			return err
		}
	}
	if f.outDir != "" {
		exportOpts.OutputDir = f.outDir
	}
	if f.filename != "" {
		exportOpts.Filename = f.filename
	}
	if f.open {
		exportOpts.OpenAfterExport = true
	}

	tbl, err := a.loadTable(path)
	if err != nil {
		return err
	}
	sel, selectedOnly, err := selectRange(f.rangeSpec, tbl)
	if err != nil {
		return err
	}

	svc := export.NewService(tbl, tbl, sel, exportOpts)
	if f.stdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), svc.Text(selectedOnly, exportOpts.Format))
		return err
	}

	out, err := svc.WithDownloader(export.NewFileSink(exportOpts, a.logger)).CSV(selectedOnly)
	if err != nil {
		return &CommandError{Command: "export", Reason: "could not save", Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess("saved "+out))
	return nil
}

// =============================================================================
// COPY COMMAND
// =============================================================================

type copyFlags struct {
	rangeSpec string
	format    string
}

func newCopyCommand(opts *rootOptions) *cobra.Command {
	f := &copyFlags{}
	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy a range, or the whole dataset, to the clipboard",
		Example: `  gridcopy copy people.csv --range 0:0-4:1
  gridcopy copy people.csv --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, opts, f, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.rangeSpec, "range", "", "Cells to copy as r0:c0-r1:c1 (\"#\" is the row-number column)")
	flags.StringVar(&f.format, "format", "", "Clipboard format: tsv or csv (default from config)")
	return cmd
}

func runCopy(cmd *cobra.Command, opts *rootOptions, f *copyFlags, path string) error {
	a, err := newApp(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return copyWith(cmd, a, f, path, a.clipboard(cmd.OutOrStdout()))
}

func copyWith(cmd *cobra.Command, a *app, f *copyFlags, path string, cb export.Clipboard) error {
	exportOpts, err := a.exportOptions()
	if err != nil {
		return err
	}
	if f.format != "" {
		if exportOpts.ClipboardFormat, err = export.ParseFormat(f.format); err != nil {
			return err
		}
	}

	tbl, err := a.loadTable(path)
	if err != nil {
		return err
	}
	sel, _, err := selectRange(f.rangeSpec, tbl)
	if err != nil {
		return err
	}

	sink := export.NewClipboardSink(cb, nil, a.logger)
	svc := export.NewService(tbl, tbl, sel, exportOpts).WithClipboard(sink)
	if !svc.CopyToClipboard() {
		return &CommandError{Command: "copy", Reason: "clipboard unavailable (try clipboard = \"osc52\" in config)"}
	}

	rows := tbl.RowCount()
	if r := sel.RowsRangeCells(); r != nil {
		rows = r.Rows()
	}
	noun := "rows"
	if rows == 1 {
		noun = "row"
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("copied %d %s", rows, noun)))
	return nil
}
