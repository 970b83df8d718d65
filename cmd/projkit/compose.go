// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/invowk/projkit/internal/compose"
	"github.com/invowk/projkit/internal/config"

	"github.com/spf13/cobra"
)

var composeFlagKeys = map[string]string{
	"file":     "compose.file",
	"profile":  "compose.profile",
	"env-file": "compose.env_file",
}

// newComposeCommand creates the `projkit compose` command tree.
func newComposeCommand(app *App) *cobra.Command {
	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "Build and run docker compose command lines",
		Long: `Build and run docker compose command lines for the project compose file.

Option strings such as "--env test1" are split with shell quoting rules.
Options that start with a dash go after "--" so they are not read as flags:

  projkit compose build-cmd start -- '--env test1'

Known commands: ` + strings.Join(compose.Commands(), ", "),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	composeCmd.PersistentFlags().String("file", "", "docker compose file (overrides compose.file)")
	composeCmd.PersistentFlags().String("profile", "", "compose profile (overrides compose.profile)")
	composeCmd.PersistentFlags().String("env-file", "", "env file relative to the compose file (overrides compose.env_file)")

	buildCmd := &cobra.Command{
		Use:   "build-cmd [command] [-- option...]",
		Short: "Print 'docker compose -f <file> [options] <command>'",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flagOverrides(cmd, composeFlagKeys))
			if err != nil {
				return err
			}
			opts, err := compose.SplitOptions(restArgs(args)...)
			if err != nil {
				return err
			}
			b := app.composeBuilder()
			argv, err := b.Args(cfg.Compose.File, compose.Command(firstArg(args)), opts...)
			if err != nil {
				return err
			}
			return printLine(cmd, b.Render(argv))
		},
	}

	optionsCmd := &cobra.Command{
		Use:   "options [-- option...]",
		Short: "Print the project options (--profile, --env-file) after any extra ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flagOverrides(cmd, composeFlagKeys))
			if err != nil {
				return err
			}
			extra, err := compose.SplitOptions(args...)
			if err != nil {
				return err
			}
			return printLine(cmd, strings.Join(compose.ProjectOptions(projectSettings(cfg), extra...), " "))
		},
	}

	execCmd := &cobra.Command{
		Use:   "exec [command] [-- option...]",
		Short: "Run a docker compose command",
		Long: `Run a docker compose command with stdio attached.

When the compose file comes from the configuration, the project profile and
env file are appended to the options. An explicit --file uses only the
given options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.execCompose(cmd, args)
		},
	}
	execCmd.Flags().Bool("dry-run", false, "print the command line instead of running it")

	statusCmd := &cobra.Command{
		Use:   "status [service]",
		Short: "Print the state of a compose service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flagOverrides(cmd, composeFlagKeys))
			if err != nil {
				return err
			}
			service := firstArg(args)
			if service == "" {
				service = cfg.Compose.Service
			}
			state, err := app.composeBuilder().Status(cmd.Context(), cfg.Compose.File, service)
			if err != nil {
				return err
			}
			return printLine(cmd, state)
		},
	}

	composeCmd.AddCommand(buildCmd, optionsCmd, execCmd, statusCmd)
	return composeCmd
}

func (a *App) execCompose(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd.Context(), flagOverrides(cmd, composeFlagKeys))
	if err != nil {
		return err
	}
	opts, err := compose.SplitOptions(restArgs(args)...)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("file") {
		opts = compose.ProjectOptions(projectSettings(cfg), opts...)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	result, err := a.composeBuilder().Exec(cmd.Context(), compose.ExecRequest{
		File:    cfg.Compose.File,
		Command: compose.Command(firstArg(args)),
		Options: opts,
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	a.Logger.Debug("docker compose finished", "command", result.Rendered, "exit", result.ExitCode)
	if !result.ExitCode.IsSuccess() {
		if result.ExitCode.IsTransient() {
			a.Logger.Warn("docker could not run the command", "exit", result.ExitCode)
		}
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

func projectSettings(cfg config.Config) compose.ProjectSettings {
	return compose.ProjectSettings{
		File:    cfg.Compose.File,
		Profile: cfg.Compose.Profile,
		EnvFile: cfg.Compose.EnvFile,
	}
}

func restArgs(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}
