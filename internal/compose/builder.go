// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/invowk/projkit/internal/argcheck"
	"github.com/invowk/projkit/internal/issue"
	"github.com/invowk/projkit/pkg/types"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultBinary is the docker CLI name shown in rendered command lines.
const DefaultBinary = "docker"

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Option configures a Builder.
	Option func(*Builder)

	// Builder assembles docker compose argument lists and runs them.
	Builder struct {
		name        string // shown in rendered command lines
		binaryPath  string
		execCommand ExecCommandFunc
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
	}

	// ProjectSettings are the per-project defaults appended by ProjectOptions.
	ProjectSettings struct {
		File    string
		Profile string
		// EnvFile is resolved against the directory of File.
		EnvFile string
	}

	// ExecRequest describes one docker compose invocation.
	ExecRequest struct {
		File    string
		Command Command
		// Options are inserted between the file and the subcommand.
		Options []string
		// DryRun prints the command line instead of running it.
		DryRun bool
	}

	// Result describes a finished (or dry-run) invocation.
	Result struct {
		Args     []string
		Rendered string
		ExitCode types.ExitCode
	}
)

// WithExecCommand injects the command factory.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(b *Builder) { b.execCommand = fn }
}

// WithBinaryPath overrides the resolved docker binary.
func WithBinaryPath(path string) Option {
	return func(b *Builder) { b.binaryPath = path }
}

// WithStdio sets the streams attached to executed commands. Dry-run output
// goes to stdout.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(b *Builder) {
		b.stdin = stdin
		b.stdout = stdout
		b.stderr = stderr
	}
}

// NewBuilder creates a Builder for the docker CLI found on PATH.
func NewBuilder(opts ...Option) *Builder {
	path, err := exec.LookPath(DefaultBinary)
	if err != nil {
		path = DefaultBinary
	}
	b := &Builder{
		name:        DefaultBinary,
		binaryPath:  path,
		execCommand: exec.CommandContext,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BinaryPath returns the docker binary used for execution.
func (b *Builder) BinaryPath() string { return b.binaryPath }

// Args returns "compose -f <file> [opts...] <command>".
func (b *Builder) Args(file string, command Command, opts ...string) ([]string, error) {
	if err := argcheck.RequireValue(file, ErrFileMissing); err != nil {
		return nil, err
	}
	if err := argcheck.RequireValue(string(command), ErrCommandMissing); err != nil {
		return nil, err
	}
	if err := command.Validate(); err != nil {
		return nil, err
	}

	args := make([]string, 0, len(opts)+4)
	args = append(args, "compose", "-f", file)
	args = append(args, opts...)
	args = append(args, command.String())
	return args, nil
}

// ProjectOptions returns "[extra...] --profile <p> --env-file <dir>/<env>",
// omitting the profile and env file when unset.
func ProjectOptions(settings ProjectSettings, extra ...string) []string {
	opts := append([]string(nil), extra...)
	if settings.Profile != "" {
		opts = append(opts, "--profile", settings.Profile)
	}
	if settings.EnvFile != "" {
		opts = append(opts, "--env-file", resolveEnvFile(settings.File, settings.EnvFile))
	}
	return opts
}

func resolveEnvFile(composeFile, envFile string) string {
	if composeFile == "" {
		return envFile
	}
	return types.FilesystemPath(envFile).ResolveAgainst(filepath.Dir(composeFile)).String()
}

// SplitOptions splits raw option strings such as "--env test1" into words
// using shell quoting rules. Variables are not expanded.
func SplitOptions(raw ...string) ([]string, error) {
	var words []string
	for _, r := range raw {
		fields, err := shell.Fields(r, noEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid option string %q: %w", r, err)
		}
		words = append(words, fields...)
	}
	return words, nil
}

func noEnv(string) string { return "" }

// Render returns the shell command line for args, prefixed with the
// docker CLI name. Words that would be split or expanded are quoted.
func (b *Builder) Render(args []string) string {
	words := make([]string, 0, len(args)+1)
	words = append(words, b.name)
	for _, arg := range args {
		words = append(words, quote(arg))
	}
	return strings.Join(words, " ")
}

func quote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n'\"$`\\;|&<>(){}*?#~") {
		return arg
	}
	q, err := syntax.Quote(arg, syntax.LangBash)
	if err != nil {
		return arg
	}
	return q
}

// Exec runs (or, in dry-run mode, prints) a docker compose command with
// stdio attached. A non-zero exit from docker is reported in Result, not
// as an error.
func (b *Builder) Exec(ctx context.Context, req ExecRequest) (*Result, error) {
	if err := argcheck.RequireValue(req.File, ErrFileMissing); err != nil {
		return nil, err
	}
	if err := argcheck.RequireValue(string(req.Command), ErrExecCommandMissing); err != nil {
		return nil, err
	}

	args, err := b.Args(req.File, req.Command, req.Options...)
	if err != nil {
		return nil, err
	}

	result := &Result{Args: args, Rendered: b.Render(args)}
	if req.DryRun {
		if _, err := fmt.Fprintln(b.stdout, result.Rendered); err != nil {
			return nil, fmt.Errorf("failed to write command line: %w", err)
		}
		return result, nil
	}

	cmd := b.execCommand(ctx, b.binaryPath, args...)
	cmd.Stdin = b.stdin
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = types.ExitCode(exitErr.ExitCode())
			return result, nil
		}
		return nil, runError(err, "run docker compose", result.Rendered)
	}
	return result, nil
}

// Status returns the state of service (e.g. "running", "exited") as
// reported by `docker compose ps`. The service must be declared in file.
func (b *Builder) Status(ctx context.Context, file, service string) (string, error) {
	if err := argcheck.RequireFile(file, ErrFileMissing); err != nil {
		return "", err
	}
	if err := argcheck.RequireValue(service, ErrServiceMissing); err != nil {
		return "", err
	}

	project, err := LoadProject(file)
	if err != nil {
		return "", err
	}
	if !project.HasService(service) {
		return "", &ServiceNotFoundError{Service: service, File: file}
	}

	args := []string{"compose", "-f", file, "ps", "--all", "--format", "{{.State}}", service}

	cmd := b.execCommand(ctx, b.binaryPath, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			err = fmt.Errorf("%s: %w", msg, err)
		}
		return "", runError(err, "query the state of "+service, b.Render(args))
	}
	return strings.TrimSpace(out.String()), nil
}

func runError(err error, operation, rendered string) error {
	ae := issue.WrapWithContext(err, operation, rendered)
	ae.Suggestions = append(ae.Suggestions, "Check that docker is installed and the daemon is running")
	return ae
}
