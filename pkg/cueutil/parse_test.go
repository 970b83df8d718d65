// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:  string & !=""
	kind:  *"optional" | "mandatory"
	tags?: [...string]
}
`

type testDoc struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	Tags []string `json:"tags,omitempty"`
}

func TestDecodeDocument_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{name: "cue", format: FormatCUE, data: "name: \"test1\"\nkind: \"mandatory\"\ntags: [\"a\", \"b\"]\n"},
		{name: "yaml", format: FormatYAML, data: "name: test1\nkind: mandatory\ntags: [a, b]\n"},
		{name: "toml", format: FormatTOML, data: "name = \"test1\"\nkind = \"mandatory\"\ntags = [\"a\", \"b\"]\n"},
		{name: "json", format: FormatJSON, data: `{"name": "test1", "kind": "mandatory", "tags": ["a", "b"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := DecodeDocument[testDoc]([]byte(testSchema), []byte(tt.data), tt.format, "#Doc")
			if err != nil {
				t.Fatalf("DecodeDocument() error: %v", err)
			}
			if result.Value.Name != "test1" {
				t.Errorf("Name = %q, want %q", result.Value.Name, "test1")
			}
			if result.Value.Kind != "mandatory" {
				t.Errorf("Kind = %q, want %q", result.Value.Kind, "mandatory")
			}
			if strings.Join(result.Value.Tags, ",") != "a,b" {
				t.Errorf("Tags = %v, want [a b]", result.Value.Tags)
			}
		})
	}
}

func TestDecodeDocument_AppliesSchemaDefaults(t *testing.T) {
	t.Parallel()

	result, err := DecodeDocument[testDoc]([]byte(testSchema), []byte("name: test5\n"), FormatYAML, "#Doc")
	if err != nil {
		t.Fatalf("DecodeDocument() error: %v", err)
	}
	if result.Value.Kind != "optional" {
		t.Errorf("Kind = %q, want default %q", result.Value.Kind, "optional")
	}
}

func TestDecodeDocument_SchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument[testDoc]([]byte(testSchema), []byte("name: test1\nkind: sometimes\n"), FormatYAML, "#Doc",
		WithFilename("menu.yml"))
	if err == nil {
		t.Fatal("expected schema violation error")
	}
	if !strings.Contains(err.Error(), "menu.yml") {
		t.Errorf("error should name the file, got: %v", err)
	}
	if !strings.Contains(err.Error(), "kind") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

func TestDecodeDocument_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{name: "cue", format: FormatCUE, data: "name: \"unterminated\n"},
		{name: "yaml", format: FormatYAML, data: "name: [unclosed\n"},
		{name: "toml", format: FormatTOML, data: "name = \n"},
		{name: "json", format: FormatJSON, data: `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := DecodeDocument[testDoc]([]byte(testSchema), []byte(tt.data), tt.format, "#Doc"); err == nil {
				t.Error("expected syntax error")
			}
		})
	}
}

func TestDecodeDocument_FileSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte("name: \"" + strings.Repeat("x", 64) + "\"\n")
	_, err := DecodeDocument[testDoc]([]byte(testSchema), data, FormatCUE, "#Doc", WithMaxFileSize(16))
	if err == nil {
		t.Fatal("expected size limit error")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeDocument_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument[testDoc]([]byte(testSchema), []byte("name: \"x\"\n"), FormatCUE, "#Missing")
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("expected internal error for missing definition, got: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "menu.cue", want: FormatCUE},
		{path: "menu.yml", want: FormatYAML},
		{path: "config/menu.YAML", want: FormatYAML},
		{path: "menu.toml", want: FormatTOML},
		{path: "menu.json", want: FormatJSON},
		{path: "menu.ini", wantErr: true},
		{path: "menu", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFromPath(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.toml")
	if err := os.WriteFile(path, []byte("name = \"from-file\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	result, err := ParseFile[testDoc]([]byte(testSchema), "#Doc", path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if result.Value.Name != "from-file" {
		t.Errorf("Name = %q, want %q", result.Value.Name, "from-file")
	}

	if _, err := ParseFile[testDoc]([]byte(testSchema), "#Doc", filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
