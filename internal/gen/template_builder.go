package gen

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"fieldsclass/internal/common"
	"fieldsclass/internal/decl"
	"fieldsclass/internal/naming"
)

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName   string
	Source        string
	RuntimeImport string
	// RuntimeAlias is set when the import needs an explicit name.
	RuntimeAlias string
	// Runtime is the qualifier used for the runtime package.
	Runtime          string
	GenerateComments bool
	Schemas          []schemaData
}

// schemaData represents one schema: the name struct, the runtime
// registry and the value accessors of fields with values.
type schemaData struct {
	Name       string
	Ident      string
	VarName    string
	ValVarName string
	DocLines   []string
	Members    []memberData
	Fields     []runtimeField
	Consts     []runtimeConst
	Enums      []enumData
}

// memberData is one string member of the generated name struct.
type memberData struct {
	Ident string
	Value string
	Doc   string
}

// runtimeField holds the quoted arguments of one Field(...) call.
type runtimeField struct {
	Args string
}

type runtimeConst struct {
	Name  string
	Value string
}

// enumData describes the value accessor generated for a field with values.
type enumData struct {
	FieldName  string
	FieldIdent string
	ValuesType string
	Labels     []labelData
}

type labelData struct {
	Ident string
	Value string
}

// buildTemplateData constructs the template data of a declaration file.
func (g *Generator) buildTemplateData(f *decl.File) (*templateData, error) {
	pkg := g.packageName(f)
	if pkg == "" {
		return nil, fmt.Errorf("no package name for %s", f.Path)
	}

	runtime := g.runtimeAlias()
	if runtime == "" {
		return nil, fmt.Errorf("empty runtime import path")
	}

	data := &templateData{
		PackageName:      pkg,
		RuntimeImport:    g.config.RuntimeImport,
		Runtime:          runtime,
		GenerateComments: g.config.GenerateComments,
	}

	if !isPlainIdent(runtime) {
		data.Runtime = "fields"
	}

	// Name the import whenever the qualifier is not its last element,
	// as with a major version suffix or dashes.
	if data.Runtime != path.Base(data.RuntimeImport) {
		data.RuntimeAlias = data.Runtime
	}

	if f.Path != "" {
		data.Source = filepath.ToSlash(filepath.Base(f.Path))
		if f.Source == decl.SourceGo {
			data.Source = f.Path
		}
	}

	for i := range f.Schemas {
		s, err := buildSchemaData(&f.Schemas[i])
		if err != nil {
			return nil, err
		}

		data.Schemas = append(data.Schemas, *s)
	}

	return data, nil
}

func buildSchemaData(s *decl.Schema) (*schemaData, error) {
	ident, err := s.Ident()
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}

	data := &schemaData{
		Name:       strconv.Quote(s.Name),
		Ident:      ident,
		VarName:    decl.SchemaVarName(ident),
		ValVarName: decl.ValVarName(ident),
		DocLines:   docLines(ident, s.Doc),
	}

	for i := range s.Fields {
		fd := &s.Fields[i]

		fieldIdent, err := fd.Ident()
		if err != nil {
			return nil, fmt.Errorf("schema %s: field %q: %w", s.Name, fd.Name, err)
		}

		member := memberData{
			Ident: fieldIdent,
			Value: strconv.Quote(fd.Name),
			Doc:   strings.Join(strings.Fields(fd.Doc), " "),
		}
		args := quoteAll(append([]string{fd.Name}, fd.Values...))
		data.Fields = append(data.Fields, runtimeField{Args: strings.Join(args, ", ")})

		if fd.HasValues() {
			enum, err := buildEnumData(ident, fieldIdent, fd)
			if err != nil {
				return nil, fmt.Errorf("schema %s: %w", s.Name, err)
			}

			data.Enums = append(data.Enums, *enum)
		}

		data.Members = append(data.Members, member)
	}

	for _, c := range s.Consts {
		constIdent, err := naming.ExportedIdent(c.Name)
		if err != nil {
			return nil, fmt.Errorf("schema %s: const %q: %w", s.Name, c.Name, err)
		}

		data.Members = append(data.Members, memberData{
			Ident: constIdent,
			Value: strconv.Quote(c.Value),
		})
		data.Consts = append(data.Consts, runtimeConst{
			Name:  strconv.Quote(c.Name),
			Value: strconv.Quote(c.Value),
		})
	}

	return data, nil
}

func buildEnumData(schemaIdent, fieldIdent string, fd *decl.FieldDecl) (*enumData, error) {
	enum := &enumData{
		FieldName:  fd.Name,
		FieldIdent: fieldIdent,
		ValuesType: decl.ValuesTypeName(schemaIdent, fieldIdent),
	}

	for _, label := range common.Dedupe(fd.Values) {
		labelIdent, err := naming.ExportedIdent(label)
		if err != nil {
			return nil, fmt.Errorf("field %q: value %q: %w", fd.Name, label, err)
		}

		enum.Labels = append(enum.Labels, labelData{Ident: labelIdent, Value: strconv.Quote(label)})
	}

	return enum, nil
}

// docLines returns the comment lines of the name struct variable.
func docLines(ident, doc string) []string {
	lines := []string{ident + " holds the declared field names."}

	doc = strings.TrimSpace(doc)
	if doc == "" {
		return lines
	}

	lines = append(lines, "")
	for _, line := range strings.Split(doc, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}

	return lines
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}

	return out
}

func isPlainIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return s != ""
}
