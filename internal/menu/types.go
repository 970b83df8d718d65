// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// KindMandatory marks an option rendered inside [...].
	KindMandatory Kind = "mandatory"
	// KindOptional marks an option rendered inside {...}.
	KindOptional Kind = "optional"

	// DirectiveOpts is the only tag directive the menu format knows.
	DirectiveOpts Directive = ".opts"
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid option kind")

	// ErrInvalidTag is the sentinel error wrapped by InvalidTagError.
	ErrInvalidTag = errors.New("invalid scope tag")

	// tagPattern matches ".opts" and ".opts .<scope>".
	tagPattern = regexp.MustCompile(`^(\.opts)(?:\s+\.([A-Za-z0-9_-]+))?$`)
)

type (
	// Kind says which group an option is rendered in.
	Kind string

	// Directive is the marker part of a scope tag.
	Directive string

	// Scope is the set of grammars an Entry belongs to. The zero value is
	// the global scope.
	Scope struct {
		name string
	}

	// Exclusion is the parsed form of a tag such as ".opts .test1".
	// Applying it replaces the global grammar with the grammar of Scope.
	Exclusion struct {
		Scope Scope
	}

	// Entry is one declared option.
	Entry struct {
		// Name is the bare identifier, without any display prefix.
		Name   string
		Kind   Kind
		Scope  Scope
		Prefix string
	}

	// Menu is a loaded menu file.
	Menu struct {
		// Program is the program name declared in the file, if any.
		Program string
		// Entries keeps declaration order and duplicates.
		Entries []Entry
	}

	// ResolvedSet is the option grammar for one scope.
	ResolvedSet struct {
		Mandatory []Entry
		Optional  []Entry
	}

	// InvalidKindError is returned when a Kind is neither mandatory nor optional.
	InvalidKindError struct {
		Value Kind
	}

	// InvalidTagError is returned when a scope or exclusion tag cannot be parsed.
	InvalidTagError struct {
		Tag string
	}
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid option kind %q (valid: mandatory, optional)", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Error implements the error interface.
func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid scope tag %q (expected %q or %q)", e.Tag, DirectiveOpts, string(DirectiveOpts)+" .<scope>")
}

// Unwrap returns ErrInvalidTag for errors.Is() compatibility.
func (e *InvalidTagError) Unwrap() error { return ErrInvalidTag }

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Validate returns nil if the Kind is one of the defined kinds.
func (k Kind) Validate() error {
	switch k {
	case KindMandatory, KindOptional:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// GlobalScope returns the scope of the default grammar.
func GlobalScope() Scope { return Scope{} }

// NamedScope returns the scope of sub-command name. An empty name is the
// global scope.
func NamedScope(name string) Scope { return Scope{name: name} }

// ParseScope parses a scope tag. An empty tag and a bare ".opts" are global.
func ParseScope(tag string) (Scope, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return GlobalScope(), nil
	}
	m := tagPattern.FindStringSubmatch(tag)
	if m == nil {
		return Scope{}, &InvalidTagError{Tag: tag}
	}
	return NamedScope(m[2]), nil
}

// IsGlobal reports whether s is the global scope.
func (s Scope) IsGlobal() bool { return s.name == "" }

// Name returns the sub-command name, or "" for the global scope.
func (s Scope) Name() string { return s.name }

// AppliesTo reports whether an entry with this scope belongs to the grammar
// of sub-command name. An empty name selects the global grammar.
func (s Scope) AppliesTo(name string) bool { return s.name == name }

// String returns the tag form of the scope.
func (s Scope) String() string {
	if s.IsGlobal() {
		return string(DirectiveOpts)
	}
	return string(DirectiveOpts) + " ." + s.name
}

// ParseExclusion parses an exclusion tag such as ".opts .test1".
func ParseExclusion(tag string) (Exclusion, error) {
	trimmed := strings.TrimSpace(tag)
	m := tagPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Exclusion{}, &InvalidTagError{Tag: tag}
	}
	return Exclusion{Scope: NamedScope(m[2])}, nil
}

// String returns the tag form of the exclusion.
func (e Exclusion) String() string { return e.Scope.String() }

// Display returns the entry as rendered in a usage line.
func (e Entry) Display() string { return e.Prefix + e.Name }

// IsEmpty reports whether the menu declares no options.
func (m *Menu) IsEmpty() bool { return m == nil || len(m.Entries) == 0 }

// Scopes returns the named scopes declared in the menu, in first-seen order.
func (m *Menu) Scopes() []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range m.Entries {
		if e.Scope.IsGlobal() || seen[e.Scope.Name()] {
			continue
		}
		seen[e.Scope.Name()] = true
		names = append(names, e.Scope.Name())
	}
	return names
}

// IsEmpty reports whether the set has neither mandatory nor optional entries.
func (s ResolvedSet) IsEmpty() bool {
	return len(s.Mandatory) == 0 && len(s.Optional) == 0
}
