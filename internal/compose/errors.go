// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"errors"
	"fmt"
)

//nolint:staticcheck // user-facing messages are capitalized
var (
	// ErrFileMissing is returned when no compose file is given or it does not exist.
	ErrFileMissing = errors.New("Please provide a docker compose file")

	// ErrCommandMissing is returned by Args when no subcommand is given.
	ErrCommandMissing = errors.New("Please provide a command")

	// ErrExecCommandMissing is returned by Exec when no subcommand is given.
	ErrExecCommandMissing = errors.New("Please provide a docker compose command")

	// ErrServiceMissing is returned by Status when no service is given.
	ErrServiceMissing = errors.New("Please provide a docker compose service name")

	// ErrUnknownCommand is the sentinel error wrapped by UnknownCommandError.
	ErrUnknownCommand = errors.New("unknown docker compose command")

	// ErrServiceNotFound is the sentinel error wrapped by ServiceNotFoundError.
	ErrServiceNotFound = errors.New("docker compose service not found")
)

type (
	// UnknownCommandError is returned for a subcommand docker compose does not have.
	UnknownCommandError struct {
		Command Command
	}

	// ServiceNotFoundError is returned when a service is not declared in the
	// compose file.
	ServiceNotFoundError struct {
		Service string
		File    string
	}
)

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown docker command: %s", e.Command)
}

// Unwrap returns ErrUnknownCommand for errors.Is() compatibility.
func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

// Error implements the error interface.
func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("no such service: %s", e.Service)
}

// Unwrap returns ErrServiceNotFound for errors.Is() compatibility.
func (e *ServiceNotFoundError) Unwrap() error { return ErrServiceNotFound }
