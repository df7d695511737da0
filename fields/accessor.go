package fields

import (
	"slices"

	"fieldsclass/internal/naming"
)

// Accessor exposes one member per permitted value of a field. Each
// member holds the value label itself.
//
// The zero Accessor has no members.
type Accessor struct {
	owner   string
	labels  []string
	members map[string]string
}

func newAccessor(owner string, labels []string) Accessor {
	members := make(map[string]string, len(labels))
	for _, l := range labels {
		members[l] = l
	}

	return Accessor{
		owner:   owner,
		labels:  labels,
		members: members,
	}
}

// Get returns the member named label. It panics with an *AttributeError
// when the field declares no such value.
func (a Accessor) Get(label string) string {
	v, ok := a.members[label]
	if !ok {
		err := &AttributeError{Owner: "values of field " + a.owner, Attr: label}
		err.Suggestion, _ = naming.Closest(label, a.labels)

		panic(err)
	}

	return v
}

// Lookup returns the member named label and whether it exists.
func (a Accessor) Lookup(label string) (string, bool) {
	v, ok := a.members[label]
	return v, ok
}

// Labels returns the member names in order of first declaration.
func (a Accessor) Labels() []string {
	return slices.Clone(a.labels)
}

// Len returns the number of members.
func (a Accessor) Len() int {
	return len(a.labels)
}
