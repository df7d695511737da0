package cli

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
)

// LoggerConfig configures the logger shared by all commands.
type LoggerConfig struct {
	Level  string
	Format string

	logger *zap.SugaredLogger
}

// Register adds the logging flags. The logger is built before any command runs.
func (l *LoggerConfig) Register(app *kingpin.Application, envVars EnvVarNames) {
	app.Flag("log.level", "Log level: debug, info, warn or error.").
		Default("info").
		Envar(envVars.LogLevel).
		EnumVar(&l.Level, "debug", "info", "warn", "error")
	app.Flag("log.format", "Log format: console or json.").
		Default("console").
		Envar(envVars.LogFormat).
		EnumVar(&l.Format, "console", "json")

	app.PreAction(l.setup)
}

func (l *LoggerConfig) setup(*kingpin.ParseContext) error {
	logger, err := NewLogger(l.Level, l.Format)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	l.logger = logger.Sugar()

	return nil
}

// Logger returns the configured logger, or a no-op logger before setup.
func (l *LoggerConfig) Logger() *zap.SugaredLogger {
	if l.logger == nil {
		return zap.NewNop().Sugar()
	}

	return l.logger
}

// NewLogger builds a zap logger writing to stderr.
func NewLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var cfg zap.Config

	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
