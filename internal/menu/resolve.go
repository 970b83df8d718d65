// SPDX-License-Identifier: MPL-2.0

package menu

// Resolve computes the option grammar of scope.
//
// An empty scope selects the global grammar. A non-empty scope selects the
// sub-command's own grammar, which shares nothing with the global one.
//
// An exclusion only applies when scope is empty: the global grammar is
// dropped and replaced by the grammar of the excluded scope, so its
// mandatory entries take the place of the global ones and its optional
// entries form the optional group. A bare ".opts" exclusion leaves the
// global grammar in place.
//
// Resolve never mutates m. An unknown scope yields an empty set.
func Resolve(m *Menu, scope string, excl *Exclusion) ResolvedSet {
	if m == nil {
		return ResolvedSet{}
	}
	if scope == "" && excl != nil {
		scope = excl.Scope.Name()
	}

	var set ResolvedSet
	for _, e := range m.Entries {
		if !e.Scope.AppliesTo(scope) {
			continue
		}
		switch e.Kind {
		case KindMandatory:
			set.Mandatory = append(set.Mandatory, e)
		case KindOptional:
			set.Optional = append(set.Optional, e)
		}
	}
	return set
}

// Names returns the bare names of every entry in the set, mandatory first.
func (s ResolvedSet) Names() []string {
	names := make([]string, 0, len(s.Mandatory)+len(s.Optional))
	for _, e := range s.Mandatory {
		names = append(names, e.Name)
	}
	for _, e := range s.Optional {
		names = append(names, e.Name)
	}
	return names
}

// Lookup returns the first entry named name, searching mandatory entries
// before optional ones.
func (s ResolvedSet) Lookup(name string) (Entry, bool) {
	for _, group := range [][]Entry{s.Mandatory, s.Optional} {
		for _, e := range group {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}
