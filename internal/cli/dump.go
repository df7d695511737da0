package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"

	"fieldsclass/fields"
	"fieldsclass/internal/decl"
)

// dumpConfig prints the schema internals rather than its String form.
var dumpConfig = &spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// DumpCommand builds the runtime schemas of declarations and prints them.
type DumpCommand struct {
	source sourceFlags
	spew   bool

	out    io.Writer
	fs     afero.Fs
	logger *LoggerConfig
}

// Register the dump command and its flags with the kingpin application.
func (c *DumpCommand) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig) {
	c.logger = logConfig

	cmd := app.Command("dump", "Print the fields, values and constants of declarations.").Action(c.run)
	c.source.register(cmd, envVars)
	cmd.Flag("spew", "Dump the runtime schema structures with go-spew.").BoolVar(&c.spew)
}

func (c *DumpCommand) run(*kingpin.ParseContext) error {
	files, err := c.source.load(c.fs)
	if err != nil {
		return err
	}

	for _, f := range files {
		if diags := decl.Validate(f); diags.HasErrors() {
			return fmt.Errorf("invalid declarations in %s: %w", f.Path, diags.Error())
		}

		for i := range f.Schemas {
			schema, err := fields.Build(f.Schemas[i].Declaration())
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}

			if c.spew {
				dumpConfig.Fdump(c.out, schema)
				continue
			}

			writeSchema(c.out, f.Path, schema)
		}
	}

	return nil
}

// writeSchema prints one schema:
//
//	F (s3.yaml)
//	  Buckets
//	  Status {"Failed", "Succeeded"}
//	    val.Succeeded = "Succeeded"
//	  Region = "us-east-1" (const)
func writeSchema(w io.Writer, source string, s *fields.Schema) {
	fmt.Fprintf(w, "%s (%s)\n", s.Name(), source)

	for _, f := range s.Fields() {
		val, ok := f.LookupVal()
		if !ok {
			fmt.Fprintf(w, "  %s\n", f)
			continue
		}

		fmt.Fprintf(w, "  %s %s\n", f, f.Values())

		for _, label := range val.Labels() {
			fmt.Fprintf(w, "    val.%s = %q\n", label, val.Get(label))
		}
	}

	for _, name := range s.ConstNames() {
		v, _ := s.Const(name)
		fmt.Fprintf(w, "  %s = %#v (const)\n", name, v)
	}
}
