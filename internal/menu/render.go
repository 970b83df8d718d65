// SPDX-License-Identifier: MPL-2.0

package menu

import "strings"

// Render formats a usage line:
//
//	Usage: <program>[ <scope>][ [m1|m2]][ {o1|o2}]
func Render(program, scope string, set ResolvedSet) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(program)
	if scope != "" {
		b.WriteString(" ")
		b.WriteString(scope)
	}
	if opts := CommandOptions(set); opts != "" {
		b.WriteString(" ")
		b.WriteString(opts)
	}
	return b.String()
}

// MandatoryGroup renders entries as "[a|b]", or "" when there are none.
func MandatoryGroup(entries []Entry) string {
	return group("[", "]", entries)
}

// OptionalGroup renders entries as "{a|b}", or "" when there are none.
func OptionalGroup(entries []Entry) string {
	return group("{", "}", entries)
}

// CommandOptions joins the non-empty groups of set with a single space.
func CommandOptions(set ResolvedSet) string {
	parts := make([]string, 0, 2)
	if g := MandatoryGroup(set.Mandatory); g != "" {
		parts = append(parts, g)
	}
	if g := OptionalGroup(set.Optional); g != "" {
		parts = append(parts, g)
	}
	return strings.Join(parts, " ")
}

// Select picks entries from set by bare name, in the order given.
// Declared entries keep their prefix; undeclared names are kept verbatim.
func Select(set ResolvedSet, names ...string) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if e, ok := set.Lookup(name); ok {
			entries = append(entries, e)
			continue
		}
		entries = append(entries, Entry{Name: name})
	}
	return entries
}

func group(open, closing string, entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.Display()
	}
	return open + strings.Join(items, "|") + closing
}
