// Package fields declares named string keys ("fields") that can carry an
// enumerated set of permitted values.
//
// A declaration set lists placeholders; Build turns it into an immutable
// Schema whose members are Field descriptors:
//
//	var F = fields.MustBuild(fields.Declare("F").
//		Field("Buckets").
//		Field("Name").
//		Field("Status", "Succeeded", "Failed"))
//
//	resp[F.Field("Buckets").Key()]         // same as resp["Buckets"]
//	F.Field("Status").Values()             // {"Failed", "Succeeded"}
//	F.Field("Status").Val().Get("Failed")  // "Failed"
//	F.Field("Name").Values()               // panics: attribute not present
//
// Reading the values of a field that was declared without any is a hard
// failure, never an empty set. That is how misuse and typos surface in
// tests. Use LookupValues / LookupVal to probe without panicking.
//
// For compile-time checked constants, generate code from the same
// declarations with cmd/fieldsgen.
package fields
