package toolchain

import (
	"context"
	"fmt"

	"github.com/mkproject-labs/mkproject/internal/language"
)

// Bootstrapper creates a new project of one language at a destination
// path that must not already exist.
type Bootstrapper interface {
	// Bootstrap runs the toolchain's ordered creation steps and writes
	// the project README. It returns on the first failing step; no
	// partial cleanup is attempted.
	Bootstrap(ctx context.Context, dest string) error
}

// Dispatch returns the Bootstrapper for the given language. Values
// outside the enumeration get an error-producing bootstrapper.
func Dispatch(lang language.Language) Bootstrapper {
	switch lang {
	case language.Python:
		return &PythonToolchain{}
	case language.Rust:
		return &RustToolchain{}
	default:
		return &unknownToolchain{lang: lang}
	}
}

// unknownToolchain is returned for language values outside the closed
// set. Parse never produces such a value; this only guards misuse.
type unknownToolchain struct {
	lang language.Language
}

func (u *unknownToolchain) Bootstrap(_ context.Context, _ string) error {
	return fmt.Errorf("no toolchain registered for language %v", u.lang)
}
