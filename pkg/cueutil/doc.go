// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates structured documents against embedded CUE schemas.
//
// Every document projkit reads goes through the same 3-step flow, whatever
// its on-disk format:
//
//  1. Compile the embedded schema
//  2. Compile (CUE) or encode (YAML, TOML, JSON) the user data and unify it with the schema
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed menu_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseFile[rawMenu](schemaBytes, "#Menu", "./menu.yml")
//	if err != nil {
//	    return nil, err // Error includes the document path for debugging
//	}
//	return result.Value, nil
package cueutil
