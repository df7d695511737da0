package cli

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"
)

// Version is set at build time with -ldflags "-X fieldsclass/internal/cli.Version=...".
var Version = ""

// New builds the fieldsgen application. Commands print to out, read and
// write declarations and generated code through fsys, and stop watching
// when ctx is done.
func New(ctx context.Context, out io.Writer, fsys afero.Fs) *kingpin.Application {
	app := kingpin.New("fieldsgen", "Generate typed field name constants from declarations.")
	app.UsageWriter(out)

	envVars := NewEnvVarsWithPrefix(EnvVarPrefix)

	// Register logger first so its PreAction runs before others
	logConfig := &LoggerConfig{}
	logConfig.Register(app, envVars)

	genCommand := &GenCommand{ctx: ctx, out: out, fs: fsys}
	genCommand.Register(app, envVars, logConfig)

	checkCommand := &CheckCommand{out: out, fs: fsys}
	checkCommand.Register(app, envVars, logConfig)

	dumpCommand := &DumpCommand{out: out, fs: fsys}
	dumpCommand.Register(app, envVars, logConfig)

	fmtCommand := &FmtCommand{out: out, fs: fsys}
	fmtCommand.Register(app, envVars, logConfig)

	app.Command("version", "Print the fieldsgen version.").Action(func(*kingpin.ParseContext) error {
		fmt.Fprintf(out, "fieldsgen %s\n", version())
		return nil
	})

	return app
}

func version() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}
