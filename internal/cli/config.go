// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/gridcopy/internal/config"
	"github.com/jeranaias/gridcopy/internal/ui/styles"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configTarget(opts.configPath)
			if err != nil {
				return err
			}
			_, statErr := os.Stat(path)
			exists := statErr == nil
			if exists && !force {
				return &ValidationError{
					Field:   "config",
					Value:   path,
					Reason:  "file already exists",
					Example: "gridcopy config init --force",
				}
			}
			if opts.configPath == "" {
				if err := config.EnsureConfigDir(); err != nil {
					return err
				}
			}
			if err := config.SaveTOML(config.Default(), path); err != nil {
				return err
			}
			if exists {
				fmt.Fprintln(cmd.OutOrStdout(), styles.RenderWarning("overwrote "+path))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess("wrote "+path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := configTarget(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.AddCommand(show, initCmd, path)
	return cmd
}

func configTarget(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	return config.ConfigPathTOML()
}
