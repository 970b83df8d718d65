// SPDX-License-Identifier: MPL-2.0

package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/invowk/projkit/internal/argcheck"
	"github.com/invowk/projkit/pkg/cueutil"
)

// MaxFileSize is the largest menu file Load and Parse accept (1MB).
const MaxFileSize int64 = 1024 * 1024

var (
	//go:embed menu_schema.cue
	menuSchema []byte

	// ErrConfigMissing is returned when no menu file path is given or the
	// file does not exist. Its message is shown to users verbatim.
	ErrConfigMissing = errors.New("Please provide a menu configuration file") //nolint:staticcheck // user-facing message

	// ErrConfigMalformed is the sentinel error wrapped by MalformedConfigError.
	ErrConfigMalformed = errors.New("malformed menu configuration")
)

type (
	// MalformedConfigError is returned when a menu file exists but cannot be
	// decoded or violates the schema. The whole load fails.
	MalformedConfigError struct {
		Path string
		Err  error
	}

	menuDocument struct {
		Program string           `json:"program"`
		Options []optionDocument `json:"options"`
	}

	optionDocument struct {
		Name   string `json:"name"`
		Kind   string `json:"kind"`
		Scope  string `json:"scope"`
		Prefix string `json:"prefix"`
	}
)

// Error implements the error interface.
func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("%s: %v", ErrConfigMalformed, e.Err)
}

// Unwrap exposes both ErrConfigMalformed and the underlying cause.
func (e *MalformedConfigError) Unwrap() []error { return []error{ErrConfigMalformed, e.Err} }

// Load reads the menu file at path. The format is chosen by extension.
// An empty file is a valid, empty menu.
func Load(path string) (*Menu, error) {
	if err := argcheck.RequireFile(path, ErrConfigMissing); err != nil {
		return nil, err
	}

	format, err := cueutil.FormatFromPath(path)
	if err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}

	return Parse(data, format, path)
}

// Parse decodes menu content of the given format. filename only appears in
// error messages.
func Parse(data []byte, format cueutil.Format, filename string) (*Menu, error) {
	result, err := cueutil.DecodeDocument[menuDocument](menuSchema, data, format, "#Menu",
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(MaxFileSize),
	)
	if err != nil {
		return nil, &MalformedConfigError{Path: filename, Err: err}
	}

	doc := result.Value
	m := &Menu{Program: doc.Program}
	for i, opt := range doc.Options {
		entry, err := opt.entry()
		if err != nil {
			return nil, &MalformedConfigError{
				Path: filename,
				Err:  fmt.Errorf("%s: options[%d]: %w", filename, i, err),
			}
		}
		m.Entries = append(m.Entries, entry)
	}
	return m, nil
}

func (o optionDocument) entry() (Entry, error) {
	kind := Kind(o.Kind)
	if err := kind.Validate(); err != nil {
		return Entry{}, err
	}

	scope, err := ParseScope(o.Scope)
	if err != nil {
		return Entry{}, err
	}

	name, prefix := splitPrefix(o.Name)
	if prefix != "" && o.Prefix != "" {
		return Entry{}, fmt.Errorf("option %q declares a prefix both inline and in the prefix field", o.Name)
	}
	if prefix == "" {
		prefix = o.Prefix
	}
	if name == "" {
		return Entry{}, fmt.Errorf("option %q has an empty name", o.Name)
	}

	return Entry{Name: name, Kind: kind, Scope: scope, Prefix: prefix}, nil
}

// splitPrefix separates leading dashes from an option name.
func splitPrefix(raw string) (name, prefix string) {
	name = strings.TrimLeft(raw, "-")
	return name, raw[:len(raw)-len(name)]
}
