// Package decl provides the declaration file format, parsing,
// validation and the bridge to the runtime fields package.
//
// A declaration file lists schemas; each schema is an ordered set of
// fields, optionally restricted to permitted values, plus pass-through
// constants.
//
// # Schema Overview
//
//	version: "1"
//	package: s3fields
//	schemas:
//	  - name: F
//	    doc: Keys of the S3 ListBuckets response.
//	    fields:
//	      Buckets:                      # no values
//	      Name: ~                       # no values
//	      Status: [Succeeded, Failed]   # permitted values
//	      platform:                     # long form
//	        values: [arm64, amd64]
//	        doc: CPU architecture.
//	    consts:
//	      Region: us-east-1             # passes through untouched
//
// Field order is the order of the YAML mapping. An explicitly empty
// values list ("Status: []") is accepted and treated exactly like no
// list; Validate flags it with a warning.
//
// # Generated names
//
// Each schema, field and value label maps to an exported Go identifier
// (see package naming). For schema F with field Status the generator
// emits the variables F and FSchema and, when any field has values, the
// variable FVal and a type per valued field such as FStatusValues.
// Validate reports every declaration whose generated names would clash.
package decl
