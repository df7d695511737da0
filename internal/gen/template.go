package gen

import "text/template"

// Template for one generated file. Every string in the data is already
// quoted or a valid identifier.

var fieldsTemplate = template.Must(template.New("fields").Parse(`// Code generated by fieldsgen. DO NOT EDIT.
{{if .Source}}// Source: {{.Source}}
{{end}}
package {{.PackageName}}

import {{if .RuntimeAlias}}{{.RuntimeAlias}} {{end}}"{{.RuntimeImport}}"
{{range .Schemas}}
{{if $.GenerateComments}}{{range .DocLines}}//{{if .}} {{.}}{{end}}
{{end}}{{end}}var {{.Ident}} = struct {
{{range .Members}}{{if and $.GenerateComments .Doc}}	// {{.Doc}}
{{end}}	{{.Ident}} string
{{end}}}{
{{range .Members}}	{{.Ident}}: {{.Value}},
{{end}}}

{{if $.GenerateComments}}// {{.VarName}} is the runtime schema of {{.Ident}}.
{{end}}var {{.VarName}} = {{$.Runtime}}.MustBuild({{$.Runtime}}.Declare({{.Name}}){{range .Fields}}.
	Field({{.Args}}){{end}}{{range .Consts}}.
	Const({{.Name}}, {{.Value}}){{end}})
{{if .Enums}}
{{if $.GenerateComments}}// {{.ValVarName}} holds the permitted values of the fields of {{.Ident}}
// that declare them, by label.
{{end}}var {{.ValVarName}} = struct {
{{range .Enums}}	{{.FieldIdent}} {{.ValuesType}}
{{end}}}{
{{range .Enums}}	{{.FieldIdent}}: {{.ValuesType}}{
{{range .Labels}}		{{.Ident}}: {{.Value}},
{{end}}	},
{{end}}}
{{range .Enums}}
{{if $.GenerateComments}}// {{.ValuesType}} holds the permitted values of field {{.FieldName}}.
{{end}}type {{.ValuesType}} struct {
{{range .Labels}}	{{.Ident}} string
{{end}}}
{{end}}{{end}}{{end}}`))
