package cli

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"fieldsclass/internal/analyze"
	"fieldsclass/internal/decl"
)

// maxParallelLoads bounds concurrent YAML file loads.
const maxParallelLoads = 8

// sourceFlags select where declarations are read from.
type sourceFlags struct {
	files    []string
	patterns []string
	dir      string
}

func (s *sourceFlags) register(cmd *kingpin.CmdClause, envVars EnvVarNames) {
	cmd.Flag("file", "YAML declaration file. Repeatable.").
		Short('f').
		Envar(envVars.Files).
		StringsVar(&s.files)
	cmd.Flag("pkg", "Go package pattern declaring placeholder structs. Repeatable.").
		Envar(envVars.Packages).
		StringsVar(&s.patterns)
	cmd.Flag("dir", "Directory Go package patterns are resolved against.").
		Envar(envVars.Dir).
		StringVar(&s.dir)
}

// load reads the YAML files (in parallel, results in flag order) and
// then the Go packages.
func (s *sourceFlags) load(fsys afero.Fs) ([]*decl.File, error) {
	if len(s.files) == 0 && len(s.patterns) == 0 {
		return nil, fmt.Errorf("no declarations given: use --file or --pkg")
	}

	files := make([]*decl.File, len(s.files))

	var g errgroup.Group
	g.SetLimit(maxParallelLoads)

	for i, path := range s.files {
		g.Go(func() error {
			f, err := decl.LoadFile(fsys, path)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(s.patterns) == 0 {
		return files, nil
	}

	a := analyze.NewAnalyzer()
	a.SetDir(s.dir)

	pkgs, err := a.LoadPackages(s.patterns...)
	if err != nil {
		return nil, err
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no placeholder structs found in %v", s.patterns)
	}

	for _, p := range pkgs {
		files = append(files, p.File())
	}

	return files, nil
}

// watchPaths returns the YAML files and the directories of Go packages.
func watchPaths(files []*decl.File) []string {
	var paths []string

	for _, f := range files {
		switch {
		case f.Source == decl.SourceYAML && f.Path != "":
			paths = append(paths, f.Path)
		case f.Source == decl.SourceGo && f.Dir != "":
			paths = append(paths, f.Dir)
		}
	}

	return paths
}
