package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"

	"fieldsclass/internal/decl"
	"fieldsclass/internal/gen"
	"fieldsclass/internal/watch"
)

// GenCommand generates Go code from declarations.
type GenCommand struct {
	source sourceFlags
	config gen.GeneratorConfig

	noComments bool
	dryRun     bool
	watch      bool
	debounce   time.Duration

	ctx    context.Context
	out    io.Writer
	fs     afero.Fs
	logger *LoggerConfig
}

// Register the gen command and its flags with the kingpin application.
func (c *GenCommand) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig) {
	c.logger = logConfig
	c.config = gen.DefaultGeneratorConfig()

	cmd := app.Command("gen", "Generate Go code from field declarations.").Action(c.run)
	c.source.register(cmd, envVars)

	cmd.Flag("out", "Output directory. Defaults to the directory of each declaration.").
		Envar(envVars.Out).
		StringVar(&c.config.OutputDir)
	cmd.Flag("package", "Package name of the generated code.").
		Envar(envVars.Package).
		StringVar(&c.config.PackageName)
	cmd.Flag("filename", "Name of the generated file.").
		Envar(envVars.Filename).
		StringVar(&c.config.Filename)
	cmd.Flag("runtime-import", "Import path of the fields runtime package.").
		Default(gen.DefaultRuntimeImport).
		Envar(envVars.RuntimeImport).
		StringVar(&c.config.RuntimeImport)
	cmd.Flag("no-comments", "Omit doc comments from generated code.").BoolVar(&c.noComments)
	cmd.Flag("dry-run", "Print generated code instead of writing it.").BoolVar(&c.dryRun)
	cmd.Flag("watch", "Regenerate whenever the declarations change.").Short('w').BoolVar(&c.watch)
	cmd.Flag("debounce", "Quiet period before regenerating in watch mode.").
		Default(watch.DefaultDebounce.String()).
		DurationVar(&c.debounce)
}

func (c *GenCommand) run(*kingpin.ParseContext) error {
	log := c.logger.Logger()
	c.config.GenerateComments = !c.noComments

	if c.watch && c.dryRun {
		return fmt.Errorf("--watch and --dry-run cannot be combined")
	}

	files, generated, err := c.generate()
	if err != nil {
		return err
	}

	if !c.watch {
		return nil
	}

	ignore := make([]string, 0, len(generated))
	for _, f := range generated {
		ignore = append(ignore, f.Path())
	}

	w := watch.New(watchPaths(files), c.debounce).Ignore(ignore...)
	w.OnError = func(err error) {
		log.Errorf("regenerating: %v", err)
	}

	log.Infof("watching %d declaration source(s)", len(files))

	return w.Run(c.ctx, func(context.Context) error {
		_, _, err := c.generate()
		return err
	})
}

// generate loads, validates and generates once.
func (c *GenCommand) generate() ([]*decl.File, []gen.GeneratedFile, error) {
	log := c.logger.Logger()

	files, err := c.source.load(c.fs)
	if err != nil {
		return nil, nil, err
	}

	for _, f := range files {
		for _, d := range decl.Validate(f).Warnings {
			log.Warnf("%s: %s", f.Path, d)
		}
	}

	g := gen.NewGenerator(c.config)
	g.SetFs(c.fs)

	generated, err := g.Generate(files...)
	if err != nil {
		return nil, nil, err
	}

	if c.dryRun {
		for _, f := range generated {
			fmt.Fprintf(c.out, "// %s\n%s", f.Path(), f.Content)
		}

		return files, generated, nil
	}

	var changed []gen.GeneratedFile

	for _, f := range generated {
		if gen.Unchanged(c.fs, f) {
			log.Debugf("%s is up to date", f.Path())
			continue
		}

		changed = append(changed, f)
	}

	if err := gen.WriteFiles(c.fs, changed); err != nil {
		return nil, nil, err
	}

	for _, f := range changed {
		log.Infof("wrote %s", f.Path())
	}

	return files, generated, nil
}
