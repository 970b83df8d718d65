// SPDX-License-Identifier: MPL-2.0

// Package config resolves the projkit configuration.
//
// Values are layered, lowest precedence first: built-in defaults, the
// project file (projkit.cue, or .yaml/.toml, validated against the embedded
// #Config schema), the state file written by `projkit init` (.projkit.env),
// PROJKIT_* environment variables, and finally explicit overrides from
// command flags. Viper performs the layering; the result is an immutable
// Config value handed to every command.
package config
