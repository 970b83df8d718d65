// SPDX-License-Identifier: MPL-2.0

// Package release queries the GitHub Releases API for a project's published
// versions and compares semantic versions locally.
//
// The client is a thin wrapper: it follows Link-header pagination up to a
// fixed page bound, reports exhausted quotas as *RateLimitError, and never
// retries. Version comparison uses golang.org/x/mod/semver and accepts tags
// with or without the leading "v".
package release
