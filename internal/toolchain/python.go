package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mkproject-labs/mkproject/internal/project"
)

// PythonToolchain bootstraps a Python project: a fresh directory with a
// venv virtual environment and ipython installed into it.
type PythonToolchain struct {
	// Stdout and Stderr, when set, receive the wrapped tools' output in
	// addition to the captured copy used for error messages.
	Stdout io.Writer
	Stderr io.Writer
}

// interactiveShellPackage is installed into every new virtual environment.
const interactiveShellPackage = "ipython"

// Bootstrap creates dest, builds a virtual environment under dest/venv,
// installs the interactive shell package with the venv's own pip, and
// writes the README. Directory creation is attempted before any
// subprocess runs, so an existing dest fails fast with an IO error.
func (p *PythonToolchain) Bootstrap(ctx context.Context, dest string) error {
	if err := os.Mkdir(dest, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	pythonBin, err := exec.LookPath("python3")
	if err != nil {
		return fmt.Errorf("python toolchain requires python3: %w", err)
	}

	venvPath := filepath.Join(dest, "venv")
	if err := run(ctx, p.Stdout, p.Stderr, pythonBin, "-m", "venv", venvPath); err != nil {
		return err
	}

	pip := filepath.Join(venvPath, venvBinDir(), pipExecutable())
	if err := run(ctx, p.Stdout, p.Stderr, pip, "install", interactiveShellPackage); err != nil {
		return err
	}

	return project.WriteReadme(dest)
}

// venvBinDir returns the executables directory inside a virtual
// environment. Python names it Scripts on Windows.
func venvBinDir() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

func pipExecutable() string {
	if runtime.GOOS == "windows" {
		return "pip.exe"
	}
	return "pip"
}
