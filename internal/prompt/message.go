// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Messenger writes leveled messages to a single writer.
type Messenger struct {
	out    io.Writer
	styles map[Level]lipgloss.Style
}

// NewMessenger returns a Messenger whose styles are resolved against w's
// color profile.
func NewMessenger(w io.Writer) *Messenger {
	r := lipgloss.NewRenderer(w)
	return &Messenger{
		out: w,
		styles: map[Level]lipgloss.Style{
			LevelNone:    r.NewStyle(),
			LevelInfo:    r.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
			LevelWarning: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
			LevelError:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
			LevelFatal:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		},
	}
}

// Show writes msg followed by a newline. Error and fatal levels only change
// the styling; they are not failures.
func (m *Messenger) Show(msg string, level Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(m.out, m.styles[level].Render(msg))
	return err
}
