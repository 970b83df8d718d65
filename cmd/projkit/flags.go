// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// flagOverrides maps the flags the user actually set to config keys.
// Unset flags leave the lower-precedence sources in effect.
func flagOverrides(cmd *cobra.Command, keys map[string]string) map[string]any {
	overrides := make(map[string]any, len(keys))
	for name, key := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}
