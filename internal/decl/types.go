package decl

import (
	"fieldsclass/fields"
	"fieldsclass/internal/naming"
)

// CurrentVersion is the only declaration file version understood.
const CurrentVersion = "1"

// File is a parsed declaration file.
type File struct {
	// Version of the file format.
	Version string `yaml:"version"`
	// Package is the Go package the generated code belongs to.
	Package string `yaml:"package,omitempty"`
	// Schemas are the declaration sets, in file order.
	Schemas []Schema `yaml:"schemas"`

	// Source tells whether the file was parsed or scanned from Go code.
	Source SourceKind `yaml:"-"`
	// Path is the file (or package path) the declarations came from.
	Path string `yaml:"-"`
	// Dir is where generated code goes unless told otherwise.
	Dir string `yaml:"-"`
}

// Schema is one declaration set.
type Schema struct {
	// Name of the schema. Also the name of the generated variable.
	Name string `yaml:"name"`
	// Doc is an optional description copied into generated comments.
	Doc string `yaml:"doc,omitempty"`
	// Fields in declaration order.
	Fields FieldList `yaml:"fields"`
	// Consts are pass-through members; they never become fields.
	Consts ConstList `yaml:"consts,omitempty"`
}

// FieldDecl is a placeholder: a name that becomes a field.
type FieldDecl struct {
	Name string
	Doc  string
	// Values are the permitted values, as written (duplicates included).
	Values []string
	// HasValueList is true when a values list was written, even an empty one.
	HasValueList bool
}

// FieldList is an ordered list of field declarations.
// In YAML it is a mapping from field name to values.
type FieldList []FieldDecl

// Const is a pass-through member.
type Const struct {
	Name  string
	Value string
}

// ConstList is an ordered list of constants.
// In YAML it is a mapping from name to value.
type ConstList []Const

// Declaration converts the schema into a runtime declaration set.
// Fields come first, then constants, each in declaration order.
func (s *Schema) Declaration() *fields.Declaration {
	d := fields.Declare(s.Name)

	for _, f := range s.Fields {
		d.Field(f.Name, f.Values...)
	}

	for _, c := range s.Consts {
		d.Const(c.Name, c.Value)
	}

	return d
}

// Ident returns the exported Go identifier of the schema.
func (s *Schema) Ident() (string, error) {
	return naming.ExportedIdent(s.Name)
}

// SchemaVarName returns the name of the generated runtime schema variable.
func SchemaVarName(schemaIdent string) string {
	return naming.Join(schemaIdent, "Schema")
}

// ValVarName returns the name of the generated variable that holds the
// permitted values of a schema's fields.
func ValVarName(schemaIdent string) string {
	return naming.Join(schemaIdent, "Val")
}

// ValuesTypeName returns the name of the generated value accessor type.
func ValuesTypeName(schemaIdent, fieldIdent string) string {
	return naming.Join(schemaIdent, fieldIdent, "Values")
}

// Ident returns the exported Go identifier of the field.
func (f *FieldDecl) Ident() (string, error) {
	return naming.ExportedIdent(f.Name)
}

// HasValues reports whether the field ends up with permitted values.
// An empty list counts as none.
func (f *FieldDecl) HasValues() bool {
	return len(f.Values) > 0
}

// Names returns the field names in declaration order.
func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}

	return names
}
