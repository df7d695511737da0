// Package analyze finds field declarations written as Go structs.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types whose members have type fields.Placeholder:
//
//	type listBuckets struct {
//		Buckets  fields.Placeholder
//		Status   fields.Placeholder `values:"Succeeded,Failed"`
//		Platform fields.Placeholder `field:"platform" values:"arm64,amd64"`
//		limit    int // not a placeholder: ignored
//	}
//
// Tags:
//   - values: comma separated permitted values (an empty tag means none)
//   - field: the declared name, when it differs from the Go member name
//
// The schema is named after the exported form of the type name, with a
// "Fields" suffix when the type name is already exported.
//
// Key types:
//   - DeclStruct: one declaration struct and its members
//   - MemberInfo: one struct member, placeholder or not
package analyze
