package decl

//go:generate go tool stringer -type=SourceKind -trimprefix=Source -output=sourcekind_string.go

// SourceKind tells where a declaration file came from.
type SourceKind int

const (
	// SourceYAML is a declaration file parsed from YAML.
	SourceYAML SourceKind = iota
	// SourceGo is a declaration set scanned from Go structs.
	SourceGo
)
