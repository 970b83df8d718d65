// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/projkit/internal/config"
)

func TestInitCommand(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), "nested", config.StateFileName)

	res := runApp(t, Dependencies{},
		"--state", state, "init",
		"--program", "test.sh",
		"--menu", "testdata/menu.yml",
		"--compose-file", composeFile,
		"--profile", "profile_test1",
		"--env-file", "test.env",
		"--service", "dc_test1",
	)
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "state file written") {
		t.Errorf("stderr = %q, want the info log line", res.stderr)
	}

	cfg, err := config.ReadState(state)
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if cfg.Program != "test.sh" || cfg.Menu.File != "testdata/menu.yml" {
		t.Errorf("program/menu = %q/%q", cfg.Program, cfg.Menu.File)
	}
	if cfg.Compose.Profile != "profile_test1" || cfg.Compose.EnvFile != "test.env" || cfg.Compose.Service != "dc_test1" {
		t.Errorf("compose = %+v", cfg.Compose)
	}

	// Later commands read the state file without repeating flags.
	res = runApp(t, Dependencies{}, "--state", state, "menu", "display-help", "test1")
	if want := "Usage: test.sh test1 [--test1|test2|test3]\n"; res.stdout != want {
		t.Errorf("display-help stdout = %q, want %q (stderr %q)", res.stdout, want, res.stderr)
	}

	res = runApp(t, Dependencies{}, "--state", state, "compose", "exec", "--dry-run", "start")
	want := "docker compose -f " + composeFile + " --profile profile_test1 --env-file testdata/test.env start\n"
	if res.stdout != want {
		t.Errorf("compose exec stdout = %q, want %q", res.stdout, want)
	}
}

func TestInitCommand_KeepsExistingSettings(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), config.StateFileName)

	if res := runApp(t, Dependencies{}, "--state", state, "init", "--program", "test.sh"); res.code != 0 {
		t.Fatalf("first init: code %d stderr %q", res.code, res.stderr)
	}
	if res := runApp(t, Dependencies{}, "--state", state, "init", "--menu", "testdata/menu.yml"); res.code != 0 {
		t.Fatalf("second init: code %d stderr %q", res.code, res.stderr)
	}

	data, err := os.ReadFile(state)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)
	for _, want := range []string{config.EnvName("program"), config.EnvName("menu.file")} {
		if !strings.Contains(content, want+"=") {
			t.Errorf("state file missing %s:\n%s", want, content)
		}
	}
	if strings.Contains(content, "TOKEN") {
		t.Errorf("state file must not contain the token:\n%s", content)
	}
}

func TestInitCommand_InvalidProgram(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), config.StateFileName)
	res := runApp(t, Dependencies{}, "--state", state, "init", "--program", "two words")
	if res.code != 1 {
		t.Errorf("exit code = %d, want 1", res.code)
	}
	if _, err := os.Stat(state); err == nil {
		t.Error("state file written for an invalid program name")
	}
}
