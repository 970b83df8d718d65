// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadProject(t *testing.T) {
	t.Parallel()

	p, err := LoadProject(composeFile)
	if err != nil {
		t.Fatalf("LoadProject() unexpected error: %v", err)
	}
	if got := p.ServiceNames(); !slices.Equal(got, []string{"dc_test1", "dc_test2"}) {
		t.Errorf("ServiceNames() = %v", got)
	}
	if !p.HasService("dc_test2") || p.HasService("service_fake") {
		t.Error("HasService mismatch")
	}
}

func TestLoadProject_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadProject(""); !errors.Is(err, ErrFileMissing) {
		t.Errorf("LoadProject(\"\") = %v, want ErrFileMissing", err)
	}
	if _, err := LoadProject("testdata"); !errors.Is(err, ErrFileMissing) {
		t.Errorf("LoadProject(dir) = %v, want ErrFileMissing", err)
	}

	bad := filepath.Join(t.TempDir(), "docker-compose.yml")
	if err := os.WriteFile(bad, []byte("services: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil || errors.Is(err, ErrFileMissing) {
		t.Errorf("LoadProject(bad yaml) = %v, want parse error", err)
	}
}
