// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/projkit/internal/config"
	"github.com/invowk/projkit/internal/menu"

	"github.com/spf13/cobra"
)

var menuFlagKeys = map[string]string{
	"menu":    "menu.file",
	"program": "program",
}

// newMenuCommand creates the `projkit menu` command tree.
func newMenuCommand(app *App) *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Render and check command options from a menu file",
		Long: `Render and check command options declared in a menu file.

The menu file lists options with a kind (mandatory or optional) and an
optional scope tag (".opts .<sub-command>"). Mandatory options render as
[a|b], optional ones as {c|d}.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	menuCmd.PersistentFlags().String("menu", "", "menu file (overrides menu.file)")
	menuCmd.PersistentFlags().String("program", "", "program name shown in usage lines")

	checkCmd := &cobra.Command{
		Use:   "check-entries [option]",
		Short: "Fail unless option is declared for the scope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := app.loadMenu(cmd)
			if err != nil {
				return err
			}
			scope, _ := cmd.Flags().GetString("scope")
			return menu.Validate(m, scope, firstArg(args))
		},
	}

	mandatoryCmd := &cobra.Command{
		Use:   "build-mandatory [option...]",
		Short: "Render the given options as a mandatory group",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.renderGroup(cmd, args, menu.MandatoryGroup)
		},
	}

	optionalCmd := &cobra.Command{
		Use:   "build-optional [option...]",
		Short: "Render the given options as an optional group",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.renderGroup(cmd, args, menu.OptionalGroup)
		},
	}

	for _, c := range []*cobra.Command{checkCmd, mandatoryCmd, optionalCmd} {
		c.Flags().String("scope", "", "sub-command whose options are used")
	}

	cmdOptsCmd := &cobra.Command{
		Use:   "build-cmd-opts [exclude-tag]",
		Short: "Render the mandatory and optional groups",
		Long: `Render the mandatory and optional groups of the global grammar.

With an exclusion tag such as ".opts .test1" the global grammar is replaced
by the grammar of the named scope.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := app.loadMenu(cmd)
			if err != nil {
				return err
			}

			var excl *menu.Exclusion
			if tag := firstArg(args); tag != "" {
				parsed, parseErr := menu.ParseExclusion(tag)
				if parseErr != nil {
					return parseErr
				}
				excl = &parsed
			}
			return printLine(cmd, menu.CommandOptions(menu.Resolve(m, "", excl)))
		},
	}

	helpCmd := &cobra.Command{
		Use:   "display-help [scope]",
		Short: "Print the usage line of the program or of a sub-command",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := app.loadMenu(cmd)
			if err != nil {
				return err
			}
			if m.IsEmpty() {
				return nil
			}
			scope := firstArg(args)
			return printLine(cmd, menu.Render(programName(cfg, m), scope, menu.Resolve(m, scope, nil)))
		},
	}

	menuCmd.AddCommand(checkCmd, mandatoryCmd, optionalCmd, cmdOptsCmd, helpCmd)
	return menuCmd
}

// loadMenu loads the configuration and the menu file it names.
func (a *App) loadMenu(cmd *cobra.Command) (*menu.Menu, config.Config, error) {
	cfg, err := a.loadConfig(cmd.Context(), flagOverrides(cmd, menuFlagKeys))
	if err != nil {
		return nil, config.Config{}, err
	}
	m, err := menu.Load(cfg.Menu.File)
	if err != nil {
		return nil, config.Config{}, err
	}
	a.Logger.Debug("menu loaded", "file", cfg.Menu.File, "entries", len(m.Entries), "scopes", m.Scopes())
	return m, cfg, nil
}

func (a *App) renderGroup(cmd *cobra.Command, names []string, group func([]menu.Entry) string) error {
	m, _, err := a.loadMenu(cmd)
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		return nil
	}
	scope, _ := cmd.Flags().GetString("scope")
	return printLine(cmd, group(menu.Select(menu.Resolve(m, scope, nil), names...)))
}

// programName picks the configured program, then the menu's own, then
// "projkit".
func programName(cfg config.Config, m *menu.Menu) string {
	switch {
	case cfg.Program != "":
		return cfg.Program.String()
	case m.Program != "":
		return m.Program
	default:
		return config.AppName
	}
}

// printLine writes s and a newline to stdout. Empty output prints nothing.
func printLine(cmd *cobra.Command, s string) error {
	if s == "" {
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func firstArg(args []string) string { return argAt(args, 0) }
