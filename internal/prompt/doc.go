// SPDX-License-Identifier: MPL-2.0

// Package prompt prints leveled status messages and asks yes/no questions.
//
// Messages are styled with lipgloss through a renderer bound to the output
// writer, so piped output stays plain text. Confirmations read a single line
// from the input, or use a huh confirm field when the input is a terminal.
package prompt
