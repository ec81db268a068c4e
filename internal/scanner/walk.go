package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// walkBottomUp calls visit for every non-directory entry under dir. Child
// directories are walked before the files of their parent, and entries within
// a directory are taken in lexicographic order (afero.ReadDir sorts by name).
// Symbolic links are not followed into; they reach visit like files.
func walkBottomUp(fs afero.Fs, dir string, visit func(path string) error) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := walkBottomUp(fs, filepath.Join(dir, entry.Name()), visit); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := visit(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}
