package decl

import (
	"fmt"
	"go/token"

	"fieldsclass/internal/common"
	"fieldsclass/internal/diagnostic"
	"fieldsclass/internal/naming"
)

// Diagnostic codes reported by Validate.
const (
	CodeFileIsNil          = "file_is_nil"
	CodeUnsupportedVersion = "unsupported_version"
	CodeInvalidPackage     = "invalid_package"
	CodeNoSchemas          = "no_schemas"
	CodeEmptySchemaName    = "empty_schema_name"
	CodeDuplicateSchema    = "duplicate_schema"
	CodeEmptySchema        = "empty_schema"
	CodeEmptyMemberName    = "empty_member_name"
	CodeDuplicateMember    = "duplicate_member"
	CodeEmptyValues        = "empty_values"
	CodeEmptyValue         = "empty_value"
	CodeDuplicateValue     = "duplicate_value"
	CodeInvalidIdent       = "invalid_ident"
	CodeIdentCollision     = "ident_collision"
	CodeRenamed            = "renamed"
)

// Validate checks a declaration file for authoring errors. Errors make
// the file unusable for generation; warnings point at declarations that
// are legal but probably not what was meant.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeFileIsNil, "declaration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q (expected %q)", f.Version, CurrentVersion), "", "")
	}

	if f.Package != "" && (!token.IsIdentifier(f.Package) || f.Package == "_") {
		res.AddError(CodeInvalidPackage, fmt.Sprintf("package %q is not a valid Go package name", f.Package), "", "")
	}

	if len(f.Schemas) == 0 {
		res.AddWarning(CodeNoSchemas, "file declares no schemas", "", "")
	}

	// Generated package-level names across all schemas.
	topLevel := newIdentSet()
	seenSchemas := map[string]struct{}{}

	for i := range f.Schemas {
		s := &f.Schemas[i]

		if s.Name == "" {
			res.AddError(CodeEmptySchemaName, fmt.Sprintf("schema #%d has an empty name", i), "", "")
			continue
		}

		if _, ok := seenSchemas[s.Name]; ok {
			res.AddError(CodeDuplicateSchema, fmt.Sprintf("schema %q is declared twice", s.Name), s.Name, "")
			continue
		}

		seenSchemas[s.Name] = struct{}{}

		validateSchema(res, s, topLevel)
	}

	return res
}

// validateSchema validates the members of a single schema.
func validateSchema(res *diagnostic.Diagnostics, s *Schema, topLevel *identSet) {
	schemaIdent, err := s.Ident()
	if err != nil {
		res.AddError(CodeInvalidIdent, err.Error(), s.Name, "")
		return
	}

	reportRenamed(res, s.Name, "", s.Name, schemaIdent)

	owner := fmt.Sprintf("schema %q", s.Name)
	topLevel.claim(res, schemaIdent, s.Name, "", owner)
	topLevel.claim(res, SchemaVarName(schemaIdent), s.Name, "", owner)

	if len(s.Fields) == 0 {
		res.AddWarning(CodeEmptySchema, "schema declares no fields", s.Name, "")
	}

	// Members of the generated struct: fields and consts share it.
	members := newIdentSet()
	seen := map[string]struct{}{}
	valued := false

	for i := range s.Fields {
		fd := &s.Fields[i]

		if !checkMemberName(res, s.Name, fd.Name, "field", seen) {
			continue
		}

		fieldIdent, err := fd.Ident()
		if err != nil {
			res.AddError(CodeInvalidIdent, err.Error(), s.Name, fd.Name)
			continue
		}

		reportRenamed(res, s.Name, fd.Name, fd.Name, fieldIdent)

		owner := fmt.Sprintf("field %q", fd.Name)
		members.claim(res, fieldIdent, s.Name, fd.Name, owner)
		validateValues(res, s.Name, fd)

		if fd.HasValues() {
			if !valued {
				topLevel.claim(res, ValVarName(schemaIdent), s.Name, "", fmt.Sprintf("schema %q", s.Name))
				valued = true
			}

			topLevel.claim(res, ValuesTypeName(schemaIdent, fieldIdent), s.Name, fd.Name, owner)
		}
	}

	for _, c := range s.Consts {
		if !checkMemberName(res, s.Name, c.Name, "const", seen) {
			continue
		}

		constIdent, err := naming.ExportedIdent(c.Name)
		if err != nil {
			res.AddError(CodeInvalidIdent, err.Error(), s.Name, c.Name)
			continue
		}

		members.claim(res, constIdent, s.Name, c.Name, fmt.Sprintf("const %q", c.Name))
	}
}

// reportRenamed notes names whose generated identifier differs.
func reportRenamed(res *diagnostic.Diagnostics, schema, member, name, ident string) {
	if name != ident {
		res.AddInfo(CodeRenamed, fmt.Sprintf("%q is generated as %s", name, ident), schema, member)
	}
}

// checkMemberName reports empty and duplicate member names. It returns
// false when the member should not be checked any further.
func checkMemberName(res *diagnostic.Diagnostics, schema, name, kind string, seen map[string]struct{}) bool {
	if name == "" {
		res.AddError(CodeEmptyMemberName, kind+" name is empty", schema, "")
		return false
	}

	if _, ok := seen[name]; ok {
		res.AddError(CodeDuplicateMember, fmt.Sprintf("%s %q is declared twice", kind, name), schema, name)
		return false
	}

	seen[name] = struct{}{}

	return true
}

// validateValues checks the permitted values of one field.
func validateValues(res *diagnostic.Diagnostics, schema string, fd *FieldDecl) {
	if fd.HasValueList && len(fd.Values) == 0 {
		res.AddWarning(CodeEmptyValues,
			"explicitly empty values list is treated as no values", schema, fd.Name)

		return
	}

	for _, dup := range common.Duplicates(fd.Values) {
		res.AddWarning(CodeDuplicateValue,
			fmt.Sprintf("value %q is listed more than once; duplicates collapse", dup), schema, fd.Name)
	}

	labels := newIdentSet()

	for _, v := range common.Dedupe(fd.Values) {
		if v == "" {
			res.AddError(CodeEmptyValue, "value label is empty", schema, fd.Name)
			continue
		}

		ident, err := naming.ExportedIdent(v)
		if err != nil {
			res.AddError(CodeInvalidIdent, err.Error(), schema, fd.Name)
			continue
		}

		labels.claim(res, ident, schema, fd.Name, fmt.Sprintf("value %q", v))
	}
}

// identSet records which declaration claimed each generated identifier.
type identSet struct {
	owners map[string]string
}

func newIdentSet() *identSet {
	return &identSet{owners: map[string]string{}}
}

// claim records ident for owner and reports a collision with an earlier claim.
func (s *identSet) claim(res *diagnostic.Diagnostics, ident, schema, member, owner string) {
	if prev, ok := s.owners[ident]; ok {
		res.AddError(CodeIdentCollision,
			fmt.Sprintf("%s generates identifier %s, already used by %s", owner, ident, prev),
			schema, member)

		return
	}

	s.owners[ident] = owner
}
