// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test doubles shared across packages, most
// notably a recorder that stands in for external binaries such as docker
// using the TestHelperProcess pattern.
package testutil
