package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"

	"fieldsclass/internal/decl"
	"fieldsclass/internal/diagnostic"
)

// CheckCommand validates declarations without generating code.
type CheckCommand struct {
	source sourceFlags
	strict bool

	out    io.Writer
	fs     afero.Fs
	logger *LoggerConfig
}

// Register the check command and its flags with the kingpin application.
func (c *CheckCommand) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig) {
	c.logger = logConfig

	cmd := app.Command("check", "Validate field declarations.").Action(c.run)
	c.source.register(cmd, envVars)
	cmd.Flag("strict", "Treat warnings as errors.").BoolVar(&c.strict)
}

func (c *CheckCommand) run(*kingpin.ParseContext) error {
	files, err := c.source.load(c.fs)
	if err != nil {
		return err
	}

	var all diagnostic.Diagnostics

	for _, f := range files {
		diags := decl.Validate(f)
		for _, d := range diags.All() {
			fmt.Fprintf(c.out, "%s: %s: %s\n", f.Path, d.Severity, d)
		}

		all.Merge(*diags)
	}

	fmt.Fprintf(c.out, "%d file(s), %d error(s), %d warning(s)\n", len(files), len(all.Errors), len(all.Warnings))

	if all.HasErrors() {
		return fmt.Errorf("declarations have %d error(s)", len(all.Errors))
	}

	if c.strict && len(all.Warnings) > 0 {
		return fmt.Errorf("declarations have %d warning(s)", len(all.Warnings))
	}

	c.logger.Logger().Debugf("checked %d declaration file(s)", len(files))

	return nil
}
