// SPDX-License-Identifier: MPL-2.0

// Package types defines small validated value types shared by the projkit
// packages: process exit codes and filesystem paths.
//
// It is a leaf package and imports only the standard library.
package types
