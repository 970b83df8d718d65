// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const (
	helperEnv         = "GO_WANT_HELPER_PROCESS"
	helperExitCodeEnv = "GO_HELPER_EXIT_CODE"
	helperStdoutEnv   = "GO_HELPER_STDOUT"
	helperStderrEnv   = "GO_HELPER_STDERR"
)

type (
	// MockCommandRecorder captures arguments passed to exec.Command for verification.
	// The commands it returns re-run the test binary, whose TestHelperProcess
	// calls RunHelperProcess.
	MockCommandRecorder struct {
		// ExitCode is the exit code to return (0 = success)
		ExitCode int
		// Stdout is written to stdout by the helper process.
		Stdout string
		// Stderr is written to stderr by the helper process.
		Stderr string

		mu          sync.Mutex
		invocations []MockInvocation
	}

	// MockInvocation represents a single invocation of exec.Command.
	MockInvocation struct {
		Name string
		Args []string
	}
)

// NewMockCommandRecorder creates a new recorder with default settings (success, no output).
func NewMockCommandRecorder() *MockCommandRecorder {
	return &MockCommandRecorder{}
}

// CommandFunc returns an exec.CommandContext replacement that records
// invocations and runs the calling package's TestHelperProcess.
func (m *MockCommandRecorder) CommandFunc(t testing.TB) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	t.Helper()
	return func(_ context.Context, name string, args ...string) *exec.Cmd {
		m.mu.Lock()
		m.invocations = append(m.invocations, MockInvocation{Name: name, Args: args})
		m.mu.Unlock()

		cs := append([]string{"-test.run=^TestHelperProcess$", "--", name}, args...)
		//nolint:gosec,noctx // the test binary re-executes itself
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = []string{
			helperEnv + "=1",
			helperExitCodeEnv + "=" + strconv.Itoa(m.ExitCode),
			helperStdoutEnv + "=" + m.Stdout,
			helperStderrEnv + "=" + m.Stderr,
		}
		return cmd
	}
}

// Invocations returns a copy of the recorded invocations.
func (m *MockCommandRecorder) Invocations() []MockInvocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockInvocation(nil), m.invocations...)
}

// LastArgs returns the arguments from the most recent invocation.
func (m *MockCommandRecorder) LastArgs() []string {
	inv := m.Invocations()
	if len(inv) == 0 {
		return nil
	}
	return inv[len(inv)-1].Args
}

// AssertInvocationCount verifies the number of command invocations.
func (m *MockCommandRecorder) AssertInvocationCount(t testing.TB, expected int) {
	t.Helper()
	if got := len(m.Invocations()); got != expected {
		t.Errorf("expected %d invocations, got %d", expected, got)
	}
}

// AssertArgs verifies the full argument list of the last invocation.
func (m *MockCommandRecorder) AssertArgs(t testing.TB, expected ...string) {
	t.Helper()
	got := strings.Join(m.LastArgs(), " ")
	want := strings.Join(expected, " ")
	if got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

// IsHelperProcess reports whether the test binary was started by a
// MockCommandRecorder command.
func IsHelperProcess() bool {
	return os.Getenv(helperEnv) == "1"
}

// RunHelperProcess writes the configured output and exits. Call it from a
// TestHelperProcess function; it returns immediately in a normal test run.
func RunHelperProcess() {
	if !IsHelperProcess() {
		return
	}

	if stdout := os.Getenv(helperStdoutEnv); stdout != "" {
		fmt.Fprint(os.Stdout, stdout)
	}
	if stderr := os.Getenv(helperStderrEnv); stderr != "" {
		fmt.Fprint(os.Stderr, stderr)
	}

	code, err := strconv.Atoi(os.Getenv(helperExitCodeEnv))
	if err != nil {
		code = 0
	}
	os.Exit(code)
}
