// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is an absolute or relative path. The zero value is
	// invalid; callers that treat "" as "use the default" check for it first.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the path as a string.
func (p FilesystemPath) String() string { return string(p) }

// IsValid reports whether the path is non-empty and not whitespace-only.
func (p FilesystemPath) IsValid() (bool, []error) {
	if err := p.Validate(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// Validate returns an *InvalidFilesystemPathError for an empty or
// whitespace-only path.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// IsFile reports whether the path names an existing regular file (or a
// symlink to one).
func (p FilesystemPath) IsFile() bool {
	if p == "" {
		return false
	}
	info, err := os.Stat(string(p))
	return err == nil && !info.IsDir()
}

// ResolveAgainst joins a relative path onto dir. Absolute paths, empty
// paths and an empty dir are returned unchanged.
func (p FilesystemPath) ResolveAgainst(dir string) FilesystemPath {
	if p == "" || dir == "" || filepath.IsAbs(string(p)) {
		return p
	}
	return FilesystemPath(filepath.Join(dir, string(p)))
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
