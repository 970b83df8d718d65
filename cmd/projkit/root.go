// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/projkit/internal/issue"
	"github.com/invowk/projkit/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the projkit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "projkit",
		Short: "Helpers for project-specific command-line tools",
		Long: TitleStyle.Render("projkit") + SubtitleStyle.Render(" - helpers for project-specific command-line tools") + `

projkit renders usage lines from a menu file, builds docker compose
command lines, looks up GitHub releases and prints messages or yes/no
prompts for shell scripts.

Settings come from projkit.cue (or .yaml/.toml), the .projkit.env state
file written by 'projkit init', PROJKIT_* environment variables and flags.

` + SubtitleStyle.Render("Examples:") + `
  projkit init --program deploy.sh --menu config/menu.yml
  projkit menu display-help
  projkit compose exec up --dry-run
  projkit release verify v1.2.0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if app.opts.verbose {
				app.setVerbose()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging and detailed errors")
	rootCmd.PersistentFlags().StringVar(&app.opts.configFile, "config", "", "project config file (default ./projkit.{cue,yaml,yml,toml})")
	rootCmd.PersistentFlags().StringVar(&app.opts.stateFile, "state", "", "state file (default ./.projkit.env)")

	rootCmd.AddCommand(
		newInitCommand(app),
		newMenuCommand(app),
		newComposeCommand(app),
		newReleaseCommand(app),
		newMessageCommand(app),
		newConfirmCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// Run executes the command tree with args and returns the process status.
func (a *App) Run(ctx context.Context, args []string) types.ExitCode {
	rootCmd := NewRootCommand(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(a.handleError),
	)
	a.flushLogs()
	return exitCodeOf(err)
}

// Execute runs projkit with the process arguments and exits.
func Execute() {
	os.Exit(int(NewApp(Dependencies{}).Run(context.Background(), os.Args[1:])))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// handleError prints err with the user-facing message on the first line,
// followed by the log lines held during the command. Verbose mode appends
// suggestions, the error chain and the issue catalog entry.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, formatErrorForDisplay(err, a.opts.verbose))
	a.flushLogs()

	if !a.opts.verbose {
		return
	}
	id := classifyError(err)
	if id == 0 {
		return
	}
	if entry := issue.Get(id); entry != nil {
		rendered, renderErr := entry.Render("dark")
		if renderErr != nil {
			a.Logger.Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}

func (a *App) flushLogs() {
	if err := a.logs.Flush(); err != nil {
		fmt.Fprintf(a.stderr, "failed to write log output: %v\n", err)
	}
}

// formatErrorForDisplay formats an error for user display. An
// ActionableError in the chain replaces the message when it has suggestions
// to list or, in verbose mode, an error chain to show.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && (ae.HasSuggestions() || verbose) {
		return ae.Format(verbose)
	}
	return err.Error()
}
