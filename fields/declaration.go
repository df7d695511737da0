package fields

import "slices"

// Placeholder marks a declaration member that Build turns into a Field.
// Values lists the permitted values; nil or empty means none.
type Placeholder struct {
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// NewPlaceholder returns a placeholder permitting the given values.
func NewPlaceholder(values ...string) Placeholder {
	return Placeholder{Values: slices.Clone(values)}
}

// Member is one named entry of a declaration set. A Value of type
// Placeholder (or a non-nil *Placeholder) becomes a field; any other
// value passes through Build untouched.
type Member struct {
	Name  string
	Value any
}

// Declaration is an ordered declaration set. Use Declare to start one.
type Declaration struct {
	name    string
	members []Member
}

// Declare starts a declaration set called name.
func Declare(name string, members ...Member) *Declaration {
	return &Declaration{
		name:    name,
		members: slices.Clone(members),
	}
}

// Field declares a field called name with optional permitted values.
func (d *Declaration) Field(name string, values ...string) *Declaration {
	return d.Add(Member{Name: name, Value: NewPlaceholder(values...)})
}

// Const declares a member that is not a field. Build keeps it as is.
func (d *Declaration) Const(name string, value any) *Declaration {
	return d.Add(Member{Name: name, Value: value})
}

// Add appends a member.
func (d *Declaration) Add(m Member) *Declaration {
	d.members = append(d.members, m)
	return d
}

// Name returns the declaration set name.
func (d *Declaration) Name() string {
	return d.name
}

// Members returns a copy of the members in declaration order.
func (d *Declaration) Members() []Member {
	return slices.Clone(d.members)
}

// placeholder reports whether v marks a field, and its values.
func placeholder(v any) (Placeholder, bool) {
	switch p := v.(type) {
	case Placeholder:
		return p, true
	case *Placeholder:
		if p == nil {
			return Placeholder{}, false
		}

		return *p, true
	default:
		return Placeholder{}, false
	}
}
