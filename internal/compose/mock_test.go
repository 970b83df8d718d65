// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"testing"

	"github.com/invowk/projkit/internal/testutil"
)

// TestHelperProcess stands in for the docker binary in Builder tests.
func TestHelperProcess(t *testing.T) {
	testutil.RunHelperProcess()
}
