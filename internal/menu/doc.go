// SPDX-License-Identifier: MPL-2.0

// Package menu implements the declarative help-menu engine.
//
// A menu file declares options as mandatory or optional, optionally scoped to
// a sub-command. The package loads that file (CUE, YAML, TOML or JSON, all
// validated against the embedded #Menu schema), resolves the option grammar
// for a scope, renders it as a usage line and validates candidate option
// names against it.
//
// Every operation after Load is a pure function of the loaded Menu.
package menu
