// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/projkit/pkg/types"
)

// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific project file when set.
		ConfigFilePath types.FilesystemPath
		// BaseDir is where the project and state files are looked up.
		// Defaults to the working directory.
		BaseDir types.FilesystemPath
		// StateFilePath overrides the state file location. An explicit path
		// must exist.
		StateFilePath types.FilesystemPath
		// Overrides are viper keys (e.g. "compose.profile") set from flags.
		// They take precedence over every other source.
		Overrides map[string]any
	}

	// InvalidLoadOptionsError is returned when LoadOptions has invalid fields.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	// Sources reports which files contributed to a loaded Config.
	Sources struct {
		ConfigFile string
		StateFile  string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (Config, error)
	}

	fileProvider struct{}
)

// Error implements the error interface.
func (e *InvalidLoadOptionsError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid load options: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }

// Validate checks that every non-empty path is usable. Empty paths mean
// "use the default".
func (o LoadOptions) Validate() error {
	var errs []error
	for _, p := range []types.FilesystemPath{o.ConfigFilePath, o.BaseDir, o.StateFilePath} {
		if p == "" {
			continue
		}
		if ok, fieldErrs := p.IsValid(); !ok {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested sources.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

// Inspect loads configuration like Provider.Load and also reports the files
// that were read.
func Inspect(ctx context.Context, opts LoadOptions) (Config, Sources, error) {
	return loadWithOptions(ctx, opts)
}
