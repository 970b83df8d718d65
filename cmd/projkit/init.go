// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/projkit/internal/config"
	"github.com/invowk/projkit/pkg/types"

	"github.com/spf13/cobra"
)

var initFlagKeys = map[string]string{
	"program":      "program",
	"menu":         "menu.file",
	"compose-file": "compose.file",
	"profile":      "compose.profile",
	"env-file":     "compose.env_file",
	"service":      "compose.service",
	"owner":        "github.owner",
	"repo":         "github.repo",
}

// newInitCommand creates the `projkit init` command.
func newInitCommand(app *App) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the project settings to the state file",
		Long: `Write the project settings to the state file (default ./.projkit.env).

Later commands read the state file, so they run without repeating flags.
Settings already present in the state file are kept unless overridden.
The GitHub token is never written.`,
		Example: `  projkit init --program test.sh --menu config/menu.yml
  projkit init --compose-file docker-compose.yml --profile dev --env-file test.env --service web`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.initState(cmd)
		},
	}

	initCmd.Flags().String("program", "", "program name shown in usage lines")
	initCmd.Flags().String("menu", "", "menu file")
	initCmd.Flags().String("compose-file", "", "docker compose file")
	initCmd.Flags().String("profile", "", "docker compose profile")
	initCmd.Flags().String("env-file", "", "env file, relative to the compose file")
	initCmd.Flags().String("service", "", "default service for 'compose status'")
	initCmd.Flags().String("owner", "", "GitHub repository owner")
	initCmd.Flags().String("repo", "", "GitHub repository name")

	return initCmd
}

func (a *App) initState(cmd *cobra.Command) error {
	target := a.opts.stateFile
	if target == "" {
		target = config.StateFileName
	}

	// The target may not exist yet, so it is merged only when present.
	opts := a.loadOptions(flagOverrides(cmd, initFlagKeys))
	opts.StateFilePath = ""
	if types.FilesystemPath(target).IsFile() {
		opts.StateFilePath = types.FilesystemPath(target)
	}

	cfg, err := a.Config.Load(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if err := config.WriteState(target, cfg); err != nil {
		return err
	}
	a.Logger.Info("state file written", "path", target)
	return nil
}
