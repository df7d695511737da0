package analyze

import (
	"go/token"
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldsclass/internal/decl"
)

const s3Pkg = "fieldsclass/examples/s3fields"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	pkgs, err := analyzer.LoadPackages(s3Pkg)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, s3Pkg, pkg.Path)
	assert.Equal(t, "s3fields", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	require.Len(t, pkg.Structs, 1)

	s := pkg.Structs[0]
	assert.Equal(t, "listBuckets", s.TypeName)
	assert.Equal(t, "ListBuckets", s.SchemaName())
	assert.Equal(t, "Keys of an S3 ListBuckets response.", s.Doc)
	assert.True(t, s.Pos.IsValid())

	// MaxKeys is kept as a member but is not a placeholder.
	require.Len(t, s.Members, 5)
	assert.False(t, s.Members[4].IsPlaceholder)
	assert.Equal(t, "MaxKeys", s.Members[4].GoName)

	placeholders := s.Placeholders()
	require.Len(t, placeholders, 4)

	assert.Equal(t, MemberInfo{GoName: "Buckets", Name: "Buckets", IsPlaceholder: true}, placeholders[0])
	assert.Equal(t, MemberInfo{
		GoName:        "Status",
		Name:          "Status",
		IsPlaceholder: true,
		Values:        []string{"Succeeded", "Failed"},
		HasValueList:  true,
	}, placeholders[2])
	assert.Equal(t, MemberInfo{
		GoName:        "Platform",
		Name:          "platform",
		IsPlaceholder: true,
		Values:        []string{"arm64", "amd64"},
		HasValueList:  true,
		Doc:           "CPU architecture of the host.",
	}, placeholders[3])
}

func TestPackageInfo_File(t *testing.T) {
	pkgs, err := NewAnalyzer().LoadPackages(s3Pkg)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	f := pkgs[0].File()
	assert.Equal(t, decl.SourceGo, f.Source)
	assert.Equal(t, "s3fields", f.Package)
	assert.Equal(t, s3Pkg, f.Path)
	assert.Equal(t, pkgs[0].Dir, f.Dir)

	require.Len(t, f.Schemas, 1)
	assert.Equal(t, "ListBuckets", f.Schemas[0].Name)
	assert.Equal(t, []string{"Buckets", "Name", "Status", "platform"}, f.Schemas[0].Fields.Names())
	assert.False(t, decl.Validate(f).HasErrors())
}

func TestAnalyzer_LoadPackages_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr string
	}{
		{"pointer placeholder", "./testdata/pointer", "must not be pointers"},
		{"tag on plain member", "./testdata/badtag", "keys.Count"},
		{"missing package", "./testdata/missing", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer().LoadPackages(tt.pattern)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnalyzer_LoadPackages_NoDeclarations(t *testing.T) {
	a := NewAnalyzer()
	a.SetDir("testdata")

	pkgs, err := a.LoadPackages("./none")
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func placeholderType() types.Type {
	pkg := types.NewPackage(PlaceholderPkgPath, "fields")
	obj := types.NewTypeName(token.NoPos, pkg, PlaceholderTypeName, nil)

	return types.NewNamed(obj, types.NewStruct(nil, nil), nil)
}

func TestAnalyzeMember(t *testing.T) {
	placeholder := placeholderType()

	other := types.NewNamed(
		types.NewTypeName(token.NoPos, types.NewPackage("example.com/x", "x"), PlaceholderTypeName, nil),
		types.NewStruct(nil, nil), nil)

	tests := []struct {
		name    string
		typ     types.Type
		tag     reflect.StructTag
		want    MemberInfo
		wantErr string
	}{
		{
			name: "plain placeholder",
			typ:  placeholder,
			want: MemberInfo{GoName: "Status", Name: "Status", IsPlaceholder: true},
		},
		{
			name: "values",
			typ:  placeholder,
			tag:  `values:"a, b ,c"`,
			want: MemberInfo{
				GoName: "Status", Name: "Status", IsPlaceholder: true,
				Values: []string{"a", "b", "c"}, HasValueList: true,
			},
		},
		{
			name: "empty values tag",
			typ:  placeholder,
			tag:  `values:""`,
			want: MemberInfo{
				GoName: "Status", Name: "Status", IsPlaceholder: true,
				Values: []string{}, HasValueList: true,
			},
		},
		{
			name: "renamed",
			typ:  placeholder,
			tag:  `field:"status"`,
			want: MemberInfo{GoName: "Status", Name: "status", IsPlaceholder: true},
		},
		{
			name: "alias",
			typ:  types.NewAlias(types.NewTypeName(token.NoPos, nil, "P", nil), placeholder),
			want: MemberInfo{GoName: "Status", Name: "Status", IsPlaceholder: true},
		},
		{
			name: "other package",
			typ:  other,
			want: MemberInfo{GoName: "Status", Name: "Status"},
		},
		{
			name: "not a placeholder",
			typ:  types.Typ[types.String],
			want: MemberInfo{GoName: "Status", Name: "Status"},
		},
		{
			name:    "empty field tag",
			typ:     placeholder,
			tag:     `field:" "`,
			wantErr: "empty \"field\" tag",
		},
		{
			name:    "pointer",
			typ:     types.NewPointer(placeholder),
			wantErr: "must not be pointers",
		},
		{
			name:    "tags on other members",
			typ:     types.Typ[types.Int],
			tag:     `field:"n"`,
			wantErr: "only allowed on fieldsclass/fields.Placeholder members",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzeMember("Status", tt.typ, tt.tag)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValues(t *testing.T) {
	assert.Equal(t, []string{}, parseValues("  "))
	assert.Equal(t, []string{"a"}, parseValues("a"))
	assert.Equal(t, []string{"a", "", "b"}, parseValues("a,,b"))
}

func TestDeclStruct_SchemaName(t *testing.T) {
	tests := []struct {
		typeName string
		want     string
	}{
		{"listBuckets", "ListBuckets"},
		{"F", "FFields"},
		{"jobKeys", "JobKeys"},
		{"S3Keys", "S3KeysFields"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			s := &DeclStruct{TypeName: tt.typeName}
			assert.Equal(t, tt.want, s.SchemaName())
		})
	}
}
