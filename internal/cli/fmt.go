package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"

	"fieldsclass/internal/decl"
)

// FmtCommand rewrites YAML declaration files in canonical form, keeping
// their comments. A file whose comments cannot be kept is left untouched
// and reported as an error.
type FmtCommand struct {
	files []string
	check bool

	out    io.Writer
	fs     afero.Fs
	logger *LoggerConfig
}

// Register the fmt command and its flags with the kingpin application.
func (c *FmtCommand) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig) {
	c.logger = logConfig

	cmd := app.Command("fmt", "Rewrite YAML declaration files in canonical form.").Action(c.run)
	cmd.Flag("file", "YAML declaration file. Repeatable.").
		Short('f').
		Required().
		Envar(envVars.Files).
		StringsVar(&c.files)
	cmd.Flag("check", "List files that are not formatted instead of rewriting them.").BoolVar(&c.check)
}

func (c *FmtCommand) run(*kingpin.ParseContext) error {
	var unformatted []string

	for _, path := range c.files {
		original, err := afero.ReadFile(c.fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		formatted, err := decl.Format(original)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if bytes.Equal(original, formatted) {
			continue
		}

		unformatted = append(unformatted, path)

		if c.check {
			fmt.Fprintln(c.out, path)
			continue
		}

		if err := afero.WriteFile(c.fs, path, formatted, 0o644); err != nil {
			return fmt.Errorf("failed to write declaration file %s: %w", path, err)
		}

		c.logger.Logger().Infof("formatted %s", path)
	}

	if c.check && len(unformatted) > 0 {
		return fmt.Errorf("%d file(s) not formatted", len(unformatted))
	}

	return nil
}
