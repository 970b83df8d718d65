// SPDX-License-Identifier: MPL-2.0

// Package argcheck validates command arguments and produces the exact
// user-facing messages of each command, instead of cobra's generic
// "accepts N arg(s)" texts.
package argcheck

import (
	"errors"

	"github.com/invowk/projkit/pkg/types"

	"github.com/spf13/cobra"
)

// ErrMissingArgument is the sentinel behind MissingArgumentError.
var ErrMissingArgument = errors.New("missing argument")

// MissingArgumentError carries the message shown to the user verbatim.
// Reason, when set, is the caller's own sentinel for the missing value.
type MissingArgumentError struct {
	Message string
	Reason  error
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string { return e.Message }

// Unwrap returns ErrMissingArgument, and Reason when set, for errors.Is()
// compatibility.
func (e *MissingArgumentError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrMissingArgument}
	}
	return []error{ErrMissingArgument, e.Reason}
}

// Require returns positional-args validation that fails with message when
// fewer than n arguments are given or any of the first n is empty.
func Require(n int, message string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return &MissingArgumentError{Message: message}
		}
		for _, arg := range args[:n] {
			if arg == "" {
				return &MissingArgumentError{Message: message}
			}
		}
		return nil
	}
}

// RequireValue fails with reason when value is empty. The message shown
// to the user is reason's text.
func RequireValue(value string, reason error) error {
	if value == "" {
		return missing(reason)
	}
	return nil
}

// RequireFile fails with reason when path is empty or does not name an
// existing regular file.
func RequireFile(path string, reason error) error {
	if !types.FilesystemPath(path).IsFile() {
		return missing(reason)
	}
	return nil
}

func missing(reason error) *MissingArgumentError {
	return &MissingArgumentError{Message: reason.Error(), Reason: reason}
}
