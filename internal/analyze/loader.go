package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Placeholder type identity.
const (
	PlaceholderPkgPath  = "fieldsclass/fields"
	PlaceholderTypeName = "Placeholder"
)

// Analyzer loads Go packages and extracts declaration structs.
type Analyzer struct {
	dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// SetDir sets the directory relative patterns are resolved against.
// The default is the current directory.
func (a *Analyzer) SetDir(dir string) {
	a.dir = dir
}

// LoadPackages loads the specified packages and returns those declaring
// at least one schema. Patterns are standard Go package patterns
// (e.g., "./api", "fieldsclass/examples/s3fields").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var out []*PackageInfo

	for _, pkg := range pkgs {
		info, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		if len(info.Structs) > 0 {
			out = append(out, info)
		}
	}

	return out, nil
}

// processPackage extracts declaration structs from a loaded package, in
// source order.
func (a *Analyzer) processPackage(pkg *packages.Package) (*PackageInfo, error) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}

				ds, err := a.analyzeStruct(pkg, ts, st)
				if err != nil {
					return nil, err
				}

				if len(ds.Placeholders()) == 0 {
					continue
				}

				ds.Doc = typeDoc(gd, ts)
				info.Structs = append(info.Structs, *ds)
			}
		}
	}

	return info, nil
}

// analyzeStruct extracts the members of a struct type.
func (a *Analyzer) analyzeStruct(pkg *packages.Package, ts *ast.TypeSpec, st *ast.StructType) (*DeclStruct, error) {
	ds := &DeclStruct{
		TypeName: ts.Name.Name,
		Pos:      pkg.Fset.Position(ts.Pos()),
	}

	for _, field := range st.Fields.List {
		tag, err := structTag(field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pkg.Fset.Position(field.Pos()), err)
		}

		// Embedded members have no name to declare.
		for _, ident := range field.Names {
			obj, ok := pkg.TypesInfo.Defs[ident].(*types.Var)
			if !ok {
				continue
			}

			m, err := analyzeMember(ident.Name, obj.Type(), tag)
			if err != nil {
				return nil, fmt.Errorf("%s: %s.%s: %w", pkg.Fset.Position(ident.Pos()), ts.Name.Name, ident.Name, err)
			}

			m.Doc = fieldDoc(field)
			ds.Members = append(ds.Members, m)
		}
	}

	return ds, nil
}

// analyzeMember classifies one struct member and reads its tags.
func analyzeMember(goName string, t types.Type, tag reflect.StructTag) (MemberInfo, error) {
	m := MemberInfo{GoName: goName, Name: goName}

	_, hasValues := tag.Lookup(ValuesTag)
	_, hasField := tag.Lookup(FieldTag)

	if ptr, ok := t.(*types.Pointer); ok && isPlaceholder(ptr.Elem()) {
		return MemberInfo{}, errors.New("placeholders must not be pointers")
	}

	if !isPlaceholder(t) {
		if hasValues || hasField {
			return MemberInfo{}, fmt.Errorf("%q and %q tags are only allowed on %s.%s members",
				ValuesTag, FieldTag, PlaceholderPkgPath, PlaceholderTypeName)
		}

		return m, nil
	}

	m.IsPlaceholder = true

	if hasField {
		name := strings.TrimSpace(tag.Get(FieldTag))
		if name == "" {
			return MemberInfo{}, fmt.Errorf("empty %q tag", FieldTag)
		}

		m.Name = name
	}

	if hasValues {
		m.Values = parseValues(tag.Get(ValuesTag))
		m.HasValueList = true
	}

	return m, nil
}

// isPlaceholder reports whether t is fields.Placeholder.
func isPlaceholder(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == PlaceholderPkgPath && obj.Name() == PlaceholderTypeName
}

// parseValues splits a values tag. Empty items are kept so validation can
// report them.
func parseValues(tag string) []string {
	if strings.TrimSpace(tag) == "" {
		return []string{}
	}

	parts := strings.Split(tag, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

func structTag(field *ast.Field) (reflect.StructTag, error) {
	if field.Tag == nil {
		return "", nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("invalid struct tag %s: %w", field.Tag.Value, err)
	}

	return reflect.StructTag(raw), nil
}

func typeDoc(gd *ast.GenDecl, ts *ast.TypeSpec) string {
	if ts.Doc != nil {
		return strings.TrimSpace(ts.Doc.Text())
	}

	// A lone "type x struct" carries its comment on the GenDecl.
	if len(gd.Specs) == 1 && gd.Doc != nil {
		return strings.TrimSpace(gd.Doc.Text())
	}

	return ""
}

func fieldDoc(field *ast.Field) string {
	switch {
	case field.Doc != nil:
		return strings.TrimSpace(field.Doc.Text())
	case field.Comment != nil:
		return strings.TrimSpace(field.Comment.Text())
	default:
		return ""
	}
}
