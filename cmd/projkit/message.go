// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/projkit/internal/argcheck"
	"github.com/invowk/projkit/internal/prompt"

	"github.com/spf13/cobra"
)

// newMessageCommand creates the `projkit message` command.
func newMessageCommand(app *App) *cobra.Command {
	messageCmd := &cobra.Command{
		Use:   "message <msg> [level]",
		Short: "Print a message styled by level",
		Long: `Print a message styled by level.

Levels are info (0), warning (-1), error (1) and fatal (2). Error and fatal
only change the styling; the command still exits 0.`,
		Args: cobra.MatchAll(argcheck.Require(1, "Please provide a message"), cobra.MaximumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			level, err := prompt.ParseLevel(argAt(args, 1))
			if err != nil {
				return err
			}
			return app.messenger().Show(args[0], level)
		},
	}
	// Levels such as -1 are arguments, not flags.
	messageCmd.Flags().SetInterspersed(false)
	return messageCmd
}

// newConfirmCommand creates the `projkit confirm` command.
func newConfirmCommand(app *App) *cobra.Command {
	confirmCmd := &cobra.Command{
		Use:   "confirm <msg> [default]",
		Short: "Ask a yes/no question and print the answer",
		Long: `Ask a yes/no question and print the answer.

"y" is printed for yes. Nothing is printed for no. Any other reply prints
the default, if one is given. The question itself goes to stderr.`,
		Args: cobra.MatchAll(argcheck.Require(1, "Please provide a message"), cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := app.confirmer().Confirm(cmd.Context(), args[0], argAt(args, 1))
			if err != nil {
				return err
			}
			app.Logger.Debug("confirm answered", "question", args[0], "answer", answer)
			return printLine(cmd, answer)
		},
	}
	confirmCmd.Flags().SetInterspersed(false)
	return confirmCmd
}

func argAt(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}
