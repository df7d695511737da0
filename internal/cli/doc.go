// Package cli implements the fieldsgen command line: the gen, check,
// dump, fmt and version commands registered on a kingpin application.
package cli
