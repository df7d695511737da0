package fields

import (
	"fieldsclass/internal/common"
)

// Field is a named key that behaves like the string of its name and
// optionally carries the set of values the key may hold.
//
// Fields are immutable. Copying a Field is cheap and safe.
type Field struct {
	name   string
	values Set
	val    Accessor
}

// New returns a field called name. When values is non-empty the field
// exposes them through Values and Val; duplicates collapse. An empty
// values list is the same as no list at all.
//
// New panics if name or any label is empty: both are authoring errors.
func New(name string, values ...string) Field {
	f, err := newField(name, values)
	if err != nil {
		panic(err)
	}

	return f
}

func newField(name string, values []string) (Field, error) {
	if name == "" {
		return Field{}, declarationError("field name is empty")
	}

	f := Field{name: name}
	if len(values) == 0 {
		return f, nil
	}

	for i, v := range values {
		if v == "" {
			return Field{}, declarationError("field %q: value #%d is empty", name, i)
		}
	}

	labels := common.Dedupe(values)
	f.values = NewSet(labels...)
	f.val = newAccessor(name, labels)

	return f, nil
}

// Name returns the field name.
func (f Field) Name() string {
	return f.name
}

// String returns the field name, so fields print exactly like the plain
// string key.
func (f Field) String() string {
	return f.name
}

// Key returns the field name for use as a map key.
func (f Field) Key() string {
	return f.name
}

// Is reports whether the field is the plain string s.
func (f Field) Is(s string) bool {
	return f.name == s
}

// MarshalText encodes the field as its name, which makes Field usable as
// a map key or value with encoding/json and friends.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.name), nil
}

// Equal reports whether both fields have the same name and declare the
// same values.
func (f Field) Equal(other Field) bool {
	return f.name == other.name && f.values.Equal(other.values)
}

// HasValues reports whether the field was declared with permitted values.
func (f Field) HasValues() bool {
	return f.values != nil
}

// Values returns a copy of the permitted values. It panics with an
// *AttributeError when the field was declared without values.
func (f Field) Values() Set {
	s, ok := f.LookupValues()
	if !ok {
		panic(f.missing("values"))
	}

	return s
}

// LookupValues returns a copy of the permitted values and whether the
// field declares any.
func (f Field) LookupValues() (Set, bool) {
	if f.values == nil {
		return nil, false
	}

	return f.values.clone(), true
}

// Val returns the value accessor. It panics with an *AttributeError when
// the field was declared without values.
func (f Field) Val() Accessor {
	a, ok := f.LookupVal()
	if !ok {
		panic(f.missing("val"))
	}

	return a
}

// LookupVal returns the value accessor and whether the field declares
// any values.
func (f Field) LookupVal() (Accessor, bool) {
	if f.values == nil {
		return Accessor{}, false
	}

	return f.val, true
}

func (f Field) missing(attr string) *AttributeError {
	return &AttributeError{Owner: "field " + f.name, Attr: attr}
}
