// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the projkit command tree.
//
// Every command receives the *App composition root, loads an immutable
// config.Config for the invocation and writes its result to stdout. User
// errors are returned to the error handler in root.go, which prints the
// message on the first line of stderr and maps it to exit status 1.
package cmd
