// SPDX-License-Identifier: MIT

package java

import (
	"slices"

	"github.com/albertocavalcante/sensorbind/internal/javabase"
)

// importSet collects imports without duplicates and yields them sorted.
// A simple name is imported at most once; later types with the same simple
// name, or with a reserved one, are written fully qualified.
type importSet struct {
	regular map[string]bool
	static  map[string]bool

	// names maps each simple name in use to the type that owns it. Reserved
	// names map to "".
	names map[string]string
}

// newImportSet returns an empty set. reserved are simple names already
// declared in the generated file's scope.
func newImportSet(reserved ...string) *importSet {
	s := &importSet{
		regular: make(map[string]bool),
		static:  make(map[string]bool),
		names:   make(map[string]string),
	}
	for _, name := range reserved {
		s.names[name] = ""
	}
	return s
}

// add records a type import and returns the name to use in code.
func (s *importSet) add(fqn string) string {
	simple := javabase.SimpleName(fqn)
	if owner, taken := s.names[simple]; taken && owner != fqn {
		return fqn
	}
	s.names[simple] = fqn
	s.regular[fqn] = true
	return simple
}

// addStatic records a static member import and returns the member name.
func (s *importSet) addStatic(member string) string {
	s.static[member] = true
	return javabase.SimpleName(member)
}

func (s *importSet) sortedRegular() []string {
	return sortedKeys(s.regular)
}

func (s *importSet) sortedStatic() []string {
	return sortedKeys(s.static)
}

func (s *importSet) empty() bool {
	return len(s.regular) == 0 && len(s.static) == 0
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
