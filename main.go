// SPDX-License-Identifier: MPL-2.0

// projkit provides the building blocks of project-specific command-line
// tools: menu-driven usage lines, docker compose command lines, GitHub
// release checks and shell prompts.
package main

import cmd "github.com/invowk/projkit/cmd/projkit"

func main() {
	cmd.Execute()
}
