// Package gen provides deterministic Go code generation for field
// declarations.
//
// Generation approach uses text/template + go/format.
//
// For a schema F with fields Buckets and Status ([Succeeded, Failed])
// the generated file contains:
//   - var F = struct{ Buckets, Status string }{...}
//   - var FSchema = fields.MustBuild(...), the runtime registry
//   - var FVal = struct{ Status FStatusValues }{...}
//   - type FStatusValues struct{ Succeeded, Failed string }
//
// Every member of F is a plain string and can index a map[string]T.
// Only fields with values get a member in FVal, so FVal.Buckets does
// not compile. The permitted value set lives on the runtime schema:
// FSchema.Field(F.Status).Values().
package gen
