// SPDX-License-Identifier: MPL-2.0

package argcheck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	const msg = "Please provide a command"

	tests := []struct {
		name    string
		n       int
		args    []string
		wantErr bool
	}{
		{"no args required", 0, nil, false},
		{"enough args", 1, []string{"up"}, false},
		{"extra args", 1, []string{"up", "-d"}, false},
		{"missing", 1, nil, true},
		{"empty first arg", 1, []string{""}, true},
		{"second missing", 2, []string{"a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Require(tt.n, msg)(nil, tt.args)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Require() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingArgument) {
				t.Fatalf("Require() error = %v, want ErrMissingArgument", err)
			}
			if err.Error() != msg {
				t.Errorf("Require() message = %q, want %q", err.Error(), msg)
			}
		})
	}
}

func TestRequireValue(t *testing.T) {
	t.Parallel()

	errServiceMissing := errors.New("Please provide a docker compose service name")

	if err := RequireValue("x", errServiceMissing); err != nil {
		t.Errorf("RequireValue(x) unexpected error: %v", err)
	}
	err := RequireValue("", errServiceMissing)
	if !errors.Is(err, errServiceMissing) || !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("RequireValue(\"\") error = %v, want both sentinels", err)
	}
	if err.Error() != errServiceMissing.Error() {
		t.Errorf("RequireValue(\"\") message = %q", err.Error())
	}
}

func TestRequireFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "menu.yml")
	if err := os.WriteFile(file, []byte("options: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errMenuMissing := errors.New("Please provide a menu configuration file")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing file", file, false},
		{"empty path", "", true},
		{"missing file", filepath.Join(dir, "nope.yml"), true},
		{"directory", dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := RequireFile(tt.path, errMenuMissing)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, errMenuMissing) {
				t.Errorf("RequireFile(%q) error = %v, want the given reason", tt.path, err)
			}
			if err.Error() != errMenuMissing.Error() {
				t.Errorf("RequireFile(%q) message = %q", tt.path, err.Error())
			}
		})
	}
}
