package gen

import (
	"fmt"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files, creating their directories
// when they don't exist. Files without a directory go to the current one.
func WriteFiles(fsys afero.Fs, files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir != "" {
			if err := fsys.MkdirAll(file.Dir, dirPerm); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		if err := afero.WriteFile(fsys, file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Unchanged reports whether the file on disk already has the generated
// content, so callers can skip rewriting it.
func Unchanged(fsys afero.Fs, file GeneratedFile) bool {
	existing, err := afero.ReadFile(fsys, file.Path())
	if err != nil {
		return false
	}

	return string(existing) == string(file.Content)
}
