// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/projkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `projkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context(), nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return err
		},
	}

	sourcesCmd := &cobra.Command{
		Use:     "sources",
		Aliases: []string{"path"},
		Short:   "Print the files the configuration was loaded from",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, sources, err := config.Inspect(cmd.Context(), app.loadOptions(nil))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, row := range [][2]string{
				{"config file", sources.ConfigFile},
				{"state file", sources.StateFile},
			} {
				value := ValueStyle.Render(row[1])
				if row[1] == "" {
					value = SubtitleStyle.Render("(none)")
				}
				if _, err := fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render(row[0]), value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	configCmd.AddCommand(showCmd, sourcesCmd)
	return configCmd
}
