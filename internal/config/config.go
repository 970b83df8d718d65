// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/invowk/projkit/internal/issue"
	"github.com/invowk/projkit/pkg/cueutil"
	"github.com/invowk/projkit/pkg/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "projkit"
	// ConfigFileName is the project file name (without extension).
	ConfigFileName = "projkit"
	// StateFileName is the state file written by `projkit init`.
	StateFileName = ".projkit.env"
	// EnvPrefix prefixes every environment variable projkit reads.
	EnvPrefix = "PROJKIT"
)

var (
	//go:embed config_schema.cue
	configSchema []byte

	// configFileExts is the project file lookup order.
	configFileExts = []string{"cue", "yaml", "yml", "toml"}

	// stateKeys are the viper keys persisted in the state file.
	stateKeys = []string{
		"program",
		"menu.file",
		"compose.file",
		"compose.profile",
		"compose.env_file",
		"compose.service",
		"github.owner",
		"github.repo",
		"github.base_url",
		"ui.verbose",
		"ui.color_scheme",
	}

	envKeyReplacer = strings.NewReplacer(".", "_")
)

// EnvName returns the environment variable (and state file key) for a
// viper key: "compose.env_file" becomes "PROJKIT_COMPOSE_ENV_FILE".
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// loadWithOptions performs option-driven config loading without any
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (Config, Sources, error) {
	select {
	case <-ctx.Done():
		return Config{}, Sources{}, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return Config{}, Sources{}, err
	}

	v := newViper()
	var sources Sources

	configPath, err := findConfigFile(opts)
	if err != nil {
		return Config{}, Sources{}, err
	}
	if configPath != "" {
		if err := loadFileIntoViper(v, configPath); err != nil {
			return Config{}, Sources{}, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configPath).
				WithSuggestion("Check that the file contains valid syntax for its extension").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'projkit config show' to see the effective configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
		sources.ConfigFile = configPath
	}

	statePath, required := stateFilePath(opts)
	if err := mergeStateIntoViper(v, statePath); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, Sources{}, issue.NewErrorContext().
				WithOperation("read state file").
				WithResource(statePath).
				WithSuggestion("Run 'projkit init' to create it").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	} else {
		sources.StateFile = statePath
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return Config{}, Sources{}, err
	}
	return cfg, sources, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("program", defaults.Program.String())
	v.SetDefault("menu.file", defaults.Menu.File)
	v.SetDefault("compose.file", defaults.Compose.File)
	v.SetDefault("compose.profile", defaults.Compose.Profile)
	v.SetDefault("compose.env_file", defaults.Compose.EnvFile)
	v.SetDefault("compose.service", defaults.Compose.Service)
	v.SetDefault("github.owner", defaults.GitHub.Owner)
	v.SetDefault("github.repo", defaults.GitHub.Repo)
	v.SetDefault("github.token", defaults.GitHub.Token)
	v.SetDefault("github.base_url", defaults.GitHub.BaseURL)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	// GITHUB_TOKEN is honored as a fallback.
	_ = v.BindEnv("github.token", EnvName("github.token"), "GITHUB_TOKEN")

	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if ok, errs := cfg.IsValid(); !ok {
		return Config{}, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Color scheme must be one of: auto, dark, light").
			WithSuggestion("Program names may only contain letters, digits, '.', '_' and '-'").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errors.Join(errs...)).
			BuildError()
	}
	return cfg, nil
}

// findConfigFile returns the project file to load, or "" when there is none.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath.String()
		if !types.FilesystemPath(path).IsFile() {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		return path, nil
	}

	for _, ext := range configFileExts {
		path := filepath.Join(baseDir(opts), ConfigFileName+"."+ext)
		if types.FilesystemPath(path).IsFile() {
			return path, nil
		}
	}
	return "", nil
}

func stateFilePath(opts LoadOptions) (path string, required bool) {
	if opts.StateFilePath != "" {
		return opts.StateFilePath.String(), true
	}
	return filepath.Join(baseDir(opts), StateFileName), false
}

func baseDir(opts LoadOptions) string {
	if opts.BaseDir != "" {
		return opts.BaseDir.String()
	}
	return "."
}

// loadFileIntoViper parses a project file, validates it against the #Config
// schema, and merges its contents into Viper.
func loadFileIntoViper(v *viper.Viper, path string) error {
	result, err := cueutil.ParseFile[map[string]any](configSchema, "#Config", path, cueutil.WithConcrete(false))
	if err != nil {
		return err
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// mergeStateIntoViper merges the dotenv state file below environment
// variables in precedence.
func mergeStateIntoViper(v *viper.Viper, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	state := make(map[string]any)
	for _, key := range stateKeys {
		value, ok := values[EnvName(key)]
		if !ok {
			continue
		}
		setNested(state, strings.Split(key, "."), value)
	}

	if err := v.MergeConfigMap(state); err != nil {
		return fmt.Errorf("failed to merge state: %w", err)
	}
	return nil
}

func setNested(m map[string]any, path []string, value any) {
	for _, part := range path[:len(path)-1] {
		child, ok := m[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[part] = child
		}
		m = child
	}
	m[path[len(path)-1]] = value
}

// WriteState writes the non-empty persisted fields of cfg to the dotenv
// state file at path, creating parent directories as needed.
func WriteState(path string, cfg Config) error {
	values := stateValues(cfg)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}

// ReadState reads a state file on top of the defaults, ignoring every other
// source.
func ReadState(path string) (Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("github.base_url", defaults.GitHub.BaseURL)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme.String())

	if err := mergeStateIntoViper(v, path); err != nil {
		return Config{}, fmt.Errorf("failed to read state file %s: %w", path, err)
	}
	return unmarshal(v)
}

func stateValues(cfg Config) map[string]string {
	fields := map[string]string{
		"program":          cfg.Program.String(),
		"menu.file":        cfg.Menu.File,
		"compose.file":     cfg.Compose.File,
		"compose.profile":  cfg.Compose.Profile,
		"compose.env_file": cfg.Compose.EnvFile,
		"compose.service":  cfg.Compose.Service,
		"github.owner":     cfg.GitHub.Owner,
		"github.repo":      cfg.GitHub.Repo,
		"github.base_url":  cfg.GitHub.BaseURL,
		"ui.color_scheme":  cfg.UI.ColorScheme.String(),
	}
	if cfg.UI.Verbose {
		fields["ui.verbose"] = "true"
	}

	values := make(map[string]string, len(fields))
	for key, value := range fields {
		if value != "" {
			values[EnvName(key)] = value
		}
	}
	return values
}

// GenerateCUE generates a CUE representation of the configuration.
// The GitHub token is never included.
func GenerateCUE(cfg Config) string {
	var sb strings.Builder

	sb.WriteString("// projkit configuration\n\n")

	if cfg.Program != "" {
		fmt.Fprintf(&sb, "program: %q\n", cfg.Program)
	}

	writeSection(&sb, "menu", map[string]string{"file": cfg.Menu.File})
	writeSection(&sb, "compose", map[string]string{
		"file":     cfg.Compose.File,
		"profile":  cfg.Compose.Profile,
		"env_file": cfg.Compose.EnvFile,
		"service":  cfg.Compose.Service,
	})
	writeSection(&sb, "github", map[string]string{
		"owner":    cfg.GitHub.Owner,
		"repo":     cfg.GitHub.Repo,
		"base_url": cfg.GitHub.BaseURL,
	})

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}

func writeSection(sb *strings.Builder, name string, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	fmt.Fprintf(sb, "\n%s: {\n", name)
	for _, k := range keys {
		fmt.Fprintf(sb, "\t%s: %q\n", k, fields[k])
	}
	sb.WriteString("}\n")
}
