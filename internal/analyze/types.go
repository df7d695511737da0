package analyze

import (
	"go/token"

	"fieldsclass/internal/decl"
	"fieldsclass/internal/naming"
)

// Struct tags understood on placeholder members.
const (
	ValuesTag = "values"
	FieldTag  = "field"
)

// schemaSuffix is appended when a declaration type is already exported.
const schemaSuffix = "Fields"

// PackageInfo describes a package holding declaration structs.
type PackageInfo struct {
	Path    string // import path, e.g. "fieldsclass/examples/s3fields"
	Name    string // package name
	Dir     string // directory of the package sources
	Structs []DeclStruct
}

// DeclStruct is a struct type with at least one placeholder member.
type DeclStruct struct {
	TypeName string
	Doc      string
	Pos      token.Position
	Members  []MemberInfo
}

// MemberInfo describes one struct member.
type MemberInfo struct {
	GoName        string // Go member name
	Name          string // declared field name (field tag or GoName)
	IsPlaceholder bool
	Values        []string
	HasValueList  bool
	Doc           string
}

// SchemaName returns the schema name generated for the struct.
func (s *DeclStruct) SchemaName() string {
	ident, err := naming.ExportedIdent(s.TypeName)
	if err != nil || ident == s.TypeName {
		return s.TypeName + schemaSuffix
	}

	return ident
}

// Placeholders returns the placeholder members in declaration order.
func (s *DeclStruct) Placeholders() []MemberInfo {
	var out []MemberInfo

	for _, m := range s.Members {
		if m.IsPlaceholder {
			out = append(out, m)
		}
	}

	return out
}

// File converts the package into a declaration file.
func (p *PackageInfo) File() *decl.File {
	f := &decl.File{
		Version: decl.CurrentVersion,
		Package: p.Name,
		Source:  decl.SourceGo,
		Path:    p.Path,
		Dir:     p.Dir,
		Schemas: make([]decl.Schema, 0, len(p.Structs)),
	}

	for i := range p.Structs {
		s := &p.Structs[i]

		schema := decl.Schema{
			Name:   s.SchemaName(),
			Doc:    s.Doc,
			Fields: decl.FieldList{},
		}

		for _, m := range s.Placeholders() {
			schema.Fields = append(schema.Fields, decl.FieldDecl{
				Name:         m.Name,
				Doc:          m.Doc,
				Values:       m.Values,
				HasValueList: m.HasValueList,
			})
		}

		f.Schemas = append(f.Schemas, schema)
	}

	return f
}
