// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"maps"
	"os"

	"github.com/invowk/projkit/internal/compose"
	"github.com/invowk/projkit/internal/config"
	"github.com/invowk/projkit/internal/prompt"
	"github.com/invowk/projkit/internal/release"
	"github.com/invowk/projkit/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: command handlers receive an *App and read
	// configuration only through it.
	App struct {
		Config   config.Provider
		Releases ReleaseClientFunc
		Logger   *log.Logger

		logs        *logBuffer
		composeOpts []compose.Option
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		opts        rootOptions
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   config.Provider
		Releases ReleaseClientFunc
		// ComposeOptions are applied after the stdio options.
		ComposeOptions []compose.Option
		Stdin          io.Reader
		Stdout         io.Writer
		Stderr         io.Writer
	}

	// ReleaseService is the subset of *release.Client used by the release commands.
	ReleaseService interface {
		Latest(ctx context.Context) (*release.Release, error)
		Verify(ctx context.Context, tag string) (string, error)
	}

	// ReleaseClientFunc builds a ReleaseService for the configured repository.
	ReleaseClientFunc func(cfg config.GitHubConfig) ReleaseService

	// rootOptions holds the persistent flag values of one invocation.
	rootOptions struct {
		configFile string
		stateFile  string
		verbose    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Releases == nil {
		deps.Releases = newReleaseClient
	}

	logs := newLogBuffer(deps.Stderr)
	return &App{
		Config:      deps.Config,
		Releases:    deps.Releases,
		Logger:      newLogger(logs),
		logs:        logs,
		composeOpts: deps.ComposeOptions,
		stdin:       deps.Stdin,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  log.InfoLevel,
	})
}

func newReleaseClient(cfg config.GitHubConfig) ReleaseService {
	return release.NewClient(
		release.WithRepo(cfg.Owner, cfg.Repo),
		release.WithToken(cfg.Token),
		release.WithBaseURL(cfg.BaseURL),
		release.WithUserAgent(config.AppName+"/"+Version),
	)
}

// setVerbose switches the logger to debug level.
func (a *App) setVerbose() {
	a.opts.verbose = true
	a.Logger.SetLevel(log.DebugLevel)
}

// loadOptions builds the LoadOptions for this invocation. Flag overrides
// take precedence over every file and environment source.
func (a *App) loadOptions(overrides map[string]any) config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.opts.configFile),
		StateFilePath:  types.FilesystemPath(a.opts.stateFile),
		Overrides:      maps.Clone(overrides),
	}
}

// loadConfig loads the effective configuration. A ui.verbose setting turns
// on debug logging for the rest of the invocation.
func (a *App) loadConfig(ctx context.Context, overrides map[string]any) (config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions(overrides))
	if err != nil {
		return config.Config{}, err
	}
	if cfg.UI.Verbose && !a.opts.verbose {
		a.setVerbose()
	}
	a.Logger.Debug("configuration loaded",
		"program", cfg.Program,
		"menu", cfg.Menu.File,
		"compose", cfg.Compose.File,
		"repo", cfg.GitHub.Owner+"/"+cfg.GitHub.Repo,
	)
	return cfg, nil
}

// composeBuilder returns a compose.Builder bound to the App's stdio.
func (a *App) composeBuilder() *compose.Builder {
	opts := append([]compose.Option{compose.WithStdio(a.stdin, a.stdout, a.stderr)}, a.composeOpts...)
	return compose.NewBuilder(opts...)
}

func (a *App) messenger() *prompt.Messenger {
	return prompt.NewMessenger(a.stdout)
}

func (a *App) confirmer() *prompt.Confirmer {
	return prompt.NewConfirmer(a.stdin, prompt.WithPromptOutput(a.stderr))
}
