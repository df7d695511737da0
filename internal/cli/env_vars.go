package cli

// EnvVarPrefix is the prefix of all environment variables read by fieldsgen.
const EnvVarPrefix = "FIELDSGEN"

// EnvVarNames are the environment variables backing the flags.
type EnvVarNames struct {
	LogLevel      string
	LogFormat     string
	Files         string
	Packages      string
	Dir           string
	Out           string
	Package       string
	Filename      string
	RuntimeImport string
}

// NewEnvVarsWithPrefix returns the variable names under the given prefix.
func NewEnvVarsWithPrefix(prefix string) EnvVarNames {
	const (
		logLevel      = "LOG_LEVEL"
		logFormat     = "LOG_FORMAT"
		files         = "FILES"
		packages      = "PACKAGES"
		dir           = "DIR"
		out           = "OUT"
		pkg           = "PACKAGE"
		filename      = "FILENAME"
		runtimeImport = "RUNTIME_IMPORT"
	)

	if len(prefix) > 0 && prefix[len(prefix)-1] != '_' {
		prefix += "_"
	}

	return EnvVarNames{
		LogLevel:      prefix + logLevel,
		LogFormat:     prefix + logFormat,
		Files:         prefix + files,
		Packages:      prefix + packages,
		Dir:           prefix + dir,
		Out:           prefix + out,
		Package:       prefix + pkg,
		Filename:      prefix + filename,
		RuntimeImport: prefix + runtimeImport,
	}
}
