// Package project holds the request model for a bootstrap run and the
// README generation shared by every language toolchain.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkproject-labs/mkproject/internal/language"
)

// Request describes one project-creation run: where to create the
// project and which language toolchain to use. Built once from CLI
// input and never mutated.
type Request struct {
	Path     string
	Language language.Language
}

// Name derives the project name from the final component of path.
// It fails for paths with no usable final component (e.g., "/", ".", "..").
func Name(path string) (string, error) {
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("path %q has no final component to use as a project name", path)
	}
	return base, nil
}

// WriteReadme writes "# <name>\n" to README.md under dest, overwriting
// any existing file. The name is derived from dest's final component.
func WriteReadme(dest string) error {
	name, err := Name(dest)
	if err != nil {
		return err
	}

	readmePath := filepath.Join(dest, "README.md")
	content := fmt.Sprintf("# %s\n", name)
	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", readmePath, err)
	}
	return nil
}
