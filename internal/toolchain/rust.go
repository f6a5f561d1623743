package toolchain

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/mkproject-labs/mkproject/internal/project"
)

// RustToolchain bootstraps a Rust project by delegating the whole
// directory layout to `cargo new`.
type RustToolchain struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Bootstrap runs `cargo new <dest>` and writes the README. Cargo itself
// refuses an existing destination, so no pre-check is needed here.
func (r *RustToolchain) Bootstrap(ctx context.Context, dest string) error {
	cargoBin, err := exec.LookPath("cargo")
	if err != nil {
		return fmt.Errorf("rust toolchain requires cargo: %w", err)
	}

	if err := run(ctx, r.Stdout, r.Stderr, cargoBin, "new", dest); err != nil {
		return err
	}

	return project.WriteReadme(dest)
}
