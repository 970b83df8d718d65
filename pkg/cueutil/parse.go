// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCUE is a native CUE document.
	FormatCUE Format = "cue"
	// FormatYAML is a YAML document (.yml or .yaml).
	FormatYAML Format = "yaml"
	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported document format")

type (
	// Format identifies the on-disk encoding of a document.
	Format string

	// UnsupportedFormatError is returned when a document path has an extension
	// that maps to no known Format.
	UnsupportedFormatError struct {
		Path string
	}

	// ParseResult contains the result of a successful parse operation.
	ParseResult[T any] struct {
		// Value is the decoded Go struct.
		Value *T

		// Unified is the unified CUE value, available for callers that need
		// to inspect defaults or extra metadata after decoding.
		Unified cue.Value
	}
)

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (valid: .cue, .yml, .yaml, .toml, .json)", filepath.Ext(e.Path))
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
}

// ParseFile reads the document at path, detects its format from the extension
// and decodes it through DecodeDocument. The path is used as the error filename
// unless WithFilename overrides it.
func ParseFile[T any](schema []byte, schemaPath, path string, opts ...Option) (*ParseResult[T], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return DecodeDocument[T](schema, data, format, schemaPath, append([]Option{WithFilename(path)}, opts...)...)
}

// ParseAndDecode performs the 3-step flow on a native CUE document.
//
// Parameters:
//   - schema: the embedded CUE schema bytes (from //go:embed)
//   - data: the user-provided CUE bytes
//   - schemaPath: the root definition to unify with (e.g., "#Menu", "#Config")
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	return DecodeDocument[T](schema, data, FormatCUE, schemaPath, opts...)
}

// DecodeDocument compiles or encodes data according to format, unifies it with
// the schema definition at schemaPath, validates it and decodes it into T.
//
// Non-CUE documents are decoded with their native library first and then
// encoded into CUE, so every format gets the same schema defaults and the
// same path-annotated error messages. An empty document is treated as an
// empty struct.
func DecodeDocument[T any](schema, data []byte, format Format, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue, err := compileDocument(ctx, data, format, filename)
	if err != nil {
		return nil, err
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)

	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

// compileDocument turns raw document bytes into a CUE value.
func compileDocument(ctx *cue.Context, data []byte, format Format, filename string) (cue.Value, error) {
	if format == FormatCUE {
		v := ctx.CompileBytes(data, cue.Filename(filename))
		if v.Err() != nil {
			return cue.Value{}, FormatError(v.Err(), filename)
		}
		return v, nil
	}

	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return cue.Value{}, fmt.Errorf("%s: %w", filename, err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return cue.Value{}, fmt.Errorf("%s: %w", filename, err)
		}
		if table != nil {
			doc = table
		}
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return cue.Value{}, fmt.Errorf("%s: %w", filename, err)
			}
		}
	default:
		return cue.Value{}, &UnsupportedFormatError{Path: filename}
	}

	if doc == nil {
		doc = map[string]any{}
	}

	v := ctx.Encode(doc)
	if v.Err() != nil {
		return cue.Value{}, FormatError(v.Err(), filename)
	}
	return v, nil
}
