// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time via main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	debug      bool
	sheet      string
	table      string
	noIndex    bool
}

// NewRootCommand builds the gridcopy command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "gridcopy [file]",
		Short: "Browse tabular data and copy or export selections",
		Long: `gridcopy shows CSV, TSV, XLSX and SQLite data in an interactive terminal
grid. Select a rectangle with the mouse or keyboard, then copy it to the
clipboard as TSV or save it as CSV.

Running gridcopy with a file is the same as "gridcopy view <file>".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runView(cmd, opts, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: ~/.gridcopy/config.toml)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to gridcopy-debug.log")
	flags.StringVar(&opts.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	flags.StringVar(&opts.table, "table", "", "SQLite table to read (default: first table)")
	flags.BoolVar(&opts.noIndex, "no-index", false, "Hide the row-number column")

	root.AddCommand(
		newViewCommand(opts),
		newExportCommand(opts),
		newCopyCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return execute(NewRootCommand(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		DisplayError(stderr, err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
