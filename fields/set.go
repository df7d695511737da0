package fields

import (
	"maps"
	"slices"
	"strings"
)

// Set is an unordered set of value labels.
//
// Sets handed out by a Field are copies; modifying one never changes the
// field it came from.
type Set map[string]struct{}

// NewSet returns a set holding the given labels. Duplicates collapse.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}

	return s
}

// Has reports whether label is in the set.
func (s Set) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of labels.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the labels in lexical order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets hold the same labels.
func (s Set) Equal(other Set) bool {
	return maps.Equal(s, other)
}

// String formats the set like {"a", "b"} in lexical order.
func (s Set) String() string {
	sorted := s.Sorted()

	quoted := make([]string, len(sorted))
	for i, l := range sorted {
		quoted[i] = `"` + l + `"`
	}

	return "{" + strings.Join(quoted, ", ") + "}"
}

func (s Set) clone() Set {
	return maps.Clone(s)
}
