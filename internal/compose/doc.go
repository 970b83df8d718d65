// SPDX-License-Identifier: MPL-2.0

// Package compose builds and runs `docker compose` command lines.
//
// The Builder only assembles arguments and shells out to the docker CLI;
// container lifecycle stays with docker itself. Every validation failure
// carries the exact message shown to users.
package compose
