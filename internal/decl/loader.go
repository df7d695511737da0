package decl

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// defaultPackage is used when neither the file nor its directory name a
// usable package.
const defaultPackage = "fields"

// LoadFile loads and parses a YAML declaration file from the given path.
// When the file names no package, the directory name is used.
func LoadFile(fsys afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path
	f.Dir = filepath.Dir(path)

	if f.Package == "" {
		f.Package = packageFromDir(path)
	}

	return f, nil
}

// Parse parses YAML data into a File. Unknown top-level and schema keys
// are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Schemas {
		s := &f.Schemas[i]
		if s.Fields == nil {
			s.Fields = FieldList{}
		}
	}
}

// yamlIndent is the indentation of marshaled declaration files.
const yamlIndent = 2

// Marshal serializes a File to YAML. The output is the canonical form
// written by fieldsgen fmt.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// packageFromDir derives a Go package name from the directory of path.
func packageFromDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return defaultPackage
	}

	var b strings.Builder

	for _, r := range strings.ToLower(filepath.Base(filepath.Dir(abs))) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		return defaultPackage
	}

	return name
}
