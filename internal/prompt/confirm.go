// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Yes is the answer Confirm returns for an affirmative reply.
const Yes = "y"

type (
	// Confirmer asks yes/no questions.
	Confirmer struct {
		in          io.Reader
		promptOut   io.Writer
		interactive bool
	}

	// ConfirmOption configures a Confirmer.
	ConfirmOption func(*Confirmer)
)

// WithPromptOutput sets where the question text is written in line mode.
// The default is io.Discard.
func WithPromptOutput(w io.Writer) ConfirmOption {
	return func(c *Confirmer) {
		c.promptOut = w
	}
}

// WithInteractive overrides terminal detection.
func WithInteractive(interactive bool) ConfirmOption {
	return func(c *Confirmer) {
		c.interactive = interactive
	}
}

// NewConfirmer reads answers from in. A terminal input switches to the
// interactive huh field unless overridden with WithInteractive.
func NewConfirmer(in io.Reader, opts ...ConfirmOption) *Confirmer {
	c := &Confirmer{
		in:          in,
		promptOut:   io.Discard,
		interactive: isTerminal(in),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Confirm asks question and returns Yes, "" or def:
//   - y or yes, in any case, give Yes
//   - n or no give ""
//   - any other reply, including an empty line or EOF, gives def
func (c *Confirmer) Confirm(ctx context.Context, question, def string) (string, error) {
	if c.interactive {
		return c.confirmInteractive(ctx, question, def)
	}

	if _, err := fmt.Fprint(c.promptOut, question+" "); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return Answer(line, def), nil
}

func (c *Confirmer) confirmInteractive(ctx context.Context, question, def string) (string, error) {
	confirmed := def != ""
	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(field)).WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("confirm prompt: %w", err)
	}
	if confirmed {
		return Yes, nil
	}
	return "", nil
}

// Answer maps a raw reply to the Confirm result.
func Answer(reply, def string) string {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes":
		return Yes
	case "n", "no":
		return ""
	default:
		return def
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
