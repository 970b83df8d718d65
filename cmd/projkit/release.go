// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strconv"

	"github.com/invowk/projkit/internal/argcheck"
	"github.com/invowk/projkit/internal/release"

	"github.com/spf13/cobra"
)

var releaseFlagKeys = map[string]string{
	"owner": "github.owner",
	"repo":  "github.repo",
}

// newReleaseCommand creates the `projkit release` command tree.
func newReleaseCommand(app *App) *cobra.Command {
	releaseCmd := &cobra.Command{
		Use:   "release",
		Short: "Query GitHub releases of the project repository",
		Long: `Query GitHub releases of the project repository.

GITHUB_TOKEN (or PROJKIT_GITHUB_TOKEN) is sent when set, which raises the
API rate limit. Drafts and prereleases are ignored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	releaseCmd.PersistentFlags().String("owner", "", "repository owner (overrides github.owner)")
	releaseCmd.PersistentFlags().String("repo", "", "repository name (overrides github.repo)")

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the tag of the highest stable release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.releaseClient(cmd)
			if err != nil {
				return err
			}
			r, err := client.Latest(cmd.Context())
			if err != nil {
				return err
			}
			return printLine(cmd, r.TagName)
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify <tag>",
		Short: "Fail unless tag names a published release",
		Args:  argcheck.Require(1, "Please provide a release tag"),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.releaseClient(cmd)
			if err != nil {
				return err
			}
			line, err := client.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printLine(cmd, line)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print -1, 0 or 1 as version a is lower, equal or higher than b",
		Args:  argcheck.Require(2, "Please provide two versions"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := release.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			return printLine(cmd, strconv.Itoa(n))
		},
	}

	newerCmd := &cobra.Command{
		Use:   "newer <current>",
		Short: "Print the latest release tag when it is newer than current",
		Long: `Print the latest stable release tag when it is newer than current.

Nothing is printed when current is up to date.`,
		Args: argcheck.Require(1, "Please provide the current version"),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.releaseClient(cmd)
			if err != nil {
				return err
			}
			r, err := client.Latest(cmd.Context())
			if err != nil {
				return err
			}
			newer, err := release.IsNewer(args[0], r.TagName)
			if err != nil {
				return err
			}
			if !newer {
				app.Logger.Debug("already up to date", "current", args[0], "latest", r.TagName)
				return nil
			}
			return printLine(cmd, r.TagName)
		},
	}

	releaseCmd.AddCommand(latestCmd, verifyCmd, compareCmd, newerCmd)
	return releaseCmd
}

func (a *App) releaseClient(cmd *cobra.Command) (ReleaseService, error) {
	cfg, err := a.loadConfig(cmd.Context(), flagOverrides(cmd, releaseFlagKeys))
	if err != nil {
		return nil, err
	}
	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return nil, release.ErrRepositoryMissing
	}
	return a.Releases(cfg.GitHub), nil
}
