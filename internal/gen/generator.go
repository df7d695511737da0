package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"fieldsclass/internal/common"
	"fieldsclass/internal/decl"
)

// DefaultRuntimeImport is the import path of the runtime fields package.
const DefaultRuntimeImport = "fieldsclass/fields"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package of the declaration file.
	PackageName string
	// OutputDir overrides the directory of the declaration file.
	OutputDir string
	// Filename overrides the derived output file name.
	Filename string
	// RuntimeImport is the import path of the runtime fields package.
	RuntimeImport string
	// GenerateComments enables doc comments in generated code.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport:    DefaultRuntimeImport,
		GenerateComments: true,
	}
}

// Generator generates Go code from declaration files.
type Generator struct {
	config GeneratorConfig
	fs     afero.Fs
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config, fs: afero.NewOsFs()}
}

// SetFs sets the filesystem used for debug output of unformatted code.
func (g *Generator) SetFs(fsys afero.Fs) {
	g.fs = fsys
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "fields_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file path.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one Go file per declaration file. Files that fail
// validation are rejected with the combined validation errors.
func (g *Generator) Generate(files ...*decl.File) ([]GeneratedFile, error) {
	out := make([]GeneratedFile, 0, len(files))
	seen := make(map[string]string, len(files))

	for _, f := range files {
		if diags := decl.Validate(f); diags.HasErrors() {
			return nil, fmt.Errorf("invalid declarations in %s: %w", f.Path, diags.Error())
		}

		file, err := g.generateFile(f)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", f.Path, err)
		}

		if prev, ok := seen[file.Path()]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, f.Path, file.Path())
		}

		seen[file.Path()] = f.Path
		out = append(out, *file)
	}

	return out, nil
}

// generateFile renders and formats the code of one declaration file.
func (g *Generator) generateFile(f *decl.File) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(f)
	if err != nil {
		return nil, err
	}

	file := &GeneratedFile{
		Dir:      g.outputDir(f),
		Filename: g.filename(f),
	}

	var buf bytes.Buffer
	if err := fieldsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if file.Dir != "" {
			_ = writeDebugUnformatted(g.fs, file.Dir, file.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

func (g *Generator) packageName(f *decl.File) string {
	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	return f.Package
}

func (g *Generator) outputDir(f *decl.File) string {
	if g.config.OutputDir != "" {
		return g.config.OutputDir
	}

	return f.Dir
}

// filename derives the output name: "api.yaml" -> "api_gen.go"; Go
// declarations go to "fields_gen.go".
func (g *Generator) filename(f *decl.File) string {
	if g.config.Filename != "" {
		return g.config.Filename
	}

	if f.Source == decl.SourceGo || f.Path == "" {
		return "fields_gen.go"
	}

	base := filepath.Base(f.Path)

	return strings.TrimSuffix(base, filepath.Ext(base)) + "_gen.go"
}

func (g *Generator) runtimeAlias() string {
	return common.PkgAlias(g.config.RuntimeImport)
}
