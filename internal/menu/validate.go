// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownOption is the sentinel error wrapped by UnknownOptionError.
var ErrUnknownOption = errors.New("unknown option")

// UnknownOptionError is returned when a candidate is not part of the
// grammar of the active scope.
type UnknownOptionError struct {
	Name string
}

// Error implements the error interface. The message is shown to users verbatim.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("Option %s does not exist", e.Name)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Validate checks candidate against the mandatory and optional names of
// scope. An empty candidate is always valid. Display prefixes on the
// candidate are ignored.
func Validate(m *Menu, scope, candidate string) error {
	if candidate == "" {
		return nil
	}
	bare, _ := splitPrefix(candidate)
	if slices.Contains(Resolve(m, scope, nil).Names(), bare) {
		return nil
	}
	return &UnknownOptionError{Name: candidate}
}
