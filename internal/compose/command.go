// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"slices"
)

// Command is a docker compose subcommand such as "up" or "start".
type Command string

// knownCommands lists the docker compose v2 subcommands.
var knownCommands = []Command{
	"attach", "build", "config", "cp", "create", "down", "events", "exec",
	"images", "kill", "logs", "ls", "pause", "port", "ps", "pull", "push",
	"restart", "rm", "run", "scale", "start", "stats", "stop", "top",
	"unpause", "up", "version", "wait", "watch",
}

// String returns the string representation of the Command.
func (c Command) String() string { return string(c) }

// Validate returns an *UnknownCommandError unless c is a docker compose
// subcommand. The empty command is reported by the caller, which knows the
// message to use.
func (c Command) Validate() error {
	if slices.Contains(knownCommands, c) {
		return nil
	}
	return &UnknownCommandError{Command: c}
}

// Commands returns the known subcommands, for shell completion.
func Commands() []string {
	out := make([]string, len(knownCommands))
	for i, c := range knownCommands {
		out[i] = string(c)
	}
	return out
}
