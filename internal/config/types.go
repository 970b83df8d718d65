// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidProgramName is returned when a ProgramName is not a plain word.
	ErrInvalidProgramName = errors.New("invalid program name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	programNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ProgramName is the name shown after "Usage:" in rendered help.
	// The zero value means "not configured".
	ProgramName string

	// InvalidProgramNameError is returned when a ProgramName contains
	// whitespace or shell metacharacters.
	InvalidProgramNameError struct {
		Value ProgramName
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Program is the program name used in usage lines.
		Program ProgramName   `json:"program" mapstructure:"program"`
		Menu    MenuConfig    `json:"menu" mapstructure:"menu"`
		Compose ComposeConfig `json:"compose" mapstructure:"compose"`
		GitHub  GitHubConfig  `json:"github" mapstructure:"github"`
		UI      UIConfig      `json:"ui" mapstructure:"ui"`
	}

	// MenuConfig locates the menu definition file.
	MenuConfig struct {
		File string `json:"file" mapstructure:"file"`
	}

	// ComposeConfig holds the docker compose defaults.
	ComposeConfig struct {
		// File is the compose file passed with -f.
		File    string `json:"file" mapstructure:"file"`
		// Profile is passed with --profile when set.
		Profile string `json:"profile" mapstructure:"profile"`
		// EnvFile is resolved against the compose file directory.
		EnvFile string `json:"env_file" mapstructure:"env_file"`
		// Service is the default service for status lookups.
		Service string `json:"service" mapstructure:"service"`
	}

	// GitHubConfig identifies the repository whose releases are queried.
	GitHubConfig struct {
		Owner   string `json:"owner" mapstructure:"owner"`
		Repo    string `json:"repo" mapstructure:"repo"`
		// Token is never written to the state file.
		Token   string `json:"-" mapstructure:"token"`
		BaseURL string `json:"base_url" mapstructure:"base_url"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and long-form error help.
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Error implements the error interface.
func (e *InvalidProgramNameError) Error() string {
	return fmt.Sprintf("invalid program name %q (letters, digits, '.', '_' and '-' only)", e.Value)
}

// Unwrap returns ErrInvalidProgramName for errors.Is() compatibility.
func (e *InvalidProgramNameError) Unwrap() error { return ErrInvalidProgramName }

// IsValid returns whether the ProgramName is usable in a usage line.
// The zero value is valid.
func (p ProgramName) IsValid() (bool, []error) {
	if p == "" || programNamePattern.MatchString(string(p)) {
		return true, nil
	}
	return false, []error{&InvalidProgramNameError{Value: p}}
}

// String returns the string representation of the ProgramName.
func (p ProgramName) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the Config has valid fields, collecting every
// field error.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.Program.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com",
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}
