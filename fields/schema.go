package fields

import (
	"fmt"
	"slices"
	"strings"

	"fieldsclass/internal/naming"
)

// Schema is the immutable result of Build: one Field per placeholder of
// the declaration set, keyed by member name, plus the pass-through
// members.
type Schema struct {
	name       string
	order      []string
	fields     map[string]Field
	constOrder []string
	consts     map[string]any
}

// Build transforms a declaration set into a Schema. Members are processed
// in declaration order; placeholders become fields and every other member
// passes through unchanged.
//
// Build fails on authoring errors: an empty schema or member name, a
// duplicate member name, a nil *Placeholder, or an empty value label.
// The returned Schema shares no state with d.
func Build(d *Declaration) (*Schema, error) {
	if d == nil {
		return nil, declarationError("declaration is nil")
	}

	if d.name == "" {
		return nil, declarationError("schema name is empty")
	}

	s := &Schema{
		name:   d.name,
		fields: make(map[string]Field, len(d.members)),
		consts: make(map[string]any),
	}

	seen := make(map[string]struct{}, len(d.members))

	for i, m := range d.members {
		if m.Name == "" {
			return nil, declarationError("schema %s: member #%d has an empty name", d.name, i)
		}

		if _, dup := seen[m.Name]; dup {
			return nil, declarationError("schema %s: duplicate member %q", d.name, m.Name)
		}

		seen[m.Name] = struct{}{}

		if p, ok := m.Value.(*Placeholder); ok && p == nil {
			return nil, declarationError("schema %s: member %q is a nil placeholder", d.name, m.Name)
		}

		p, ok := placeholder(m.Value)
		if !ok {
			s.constOrder = append(s.constOrder, m.Name)
			s.consts[m.Name] = m.Value

			continue
		}

		f, err := newField(m.Name, p.Values)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", d.name, err)
		}

		s.order = append(s.order, m.Name)
		s.fields[m.Name] = f
	}

	return s, nil
}

// MustBuild is like Build but panics on error. It is meant for package
// level variables, where a bad declaration is a programming error.
func MustBuild(d *Declaration) *Schema {
	s, err := Build(d)
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Field returns the field called name. It panics with an *AttributeError
// when the schema declares no such field.
func (s *Schema) Field(name string) Field {
	f, ok := s.fields[name]
	if !ok {
		err := &AttributeError{Owner: "schema " + s.name, Attr: name}
		err.Suggestion, _ = naming.Closest(name, s.order)

		panic(err)
	}

	return f
}

// Lookup returns the field called name and whether it exists.
func (s *Schema) Lookup(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.order))
	for i, name := range s.order {
		out[i] = s.fields[name]
	}

	return out
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	return slices.Clone(s.order)
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.order)
}

// Const returns the pass-through member called name.
func (s *Schema) Const(name string) (any, bool) {
	v, ok := s.consts[name]
	return v, ok
}

// ConstNames returns the pass-through member names in declaration order.
func (s *Schema) ConstNames() []string {
	return slices.Clone(s.constOrder)
}

// String formats the schema as Name{field, ...}.
func (s *Schema) String() string {
	return s.name + "{" + strings.Join(s.order, ", ") + "}"
}
