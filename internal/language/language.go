// Package language defines the closed set of languages mkproject can
// bootstrap and the parser for the --language selector.
package language

import "fmt"

// Language identifies one of the supported project languages.
type Language int

// Supported languages.
const (
	Python Language = iota
	Rust
)

// Selector strings accepted by Parse.
const (
	namePython = "python"
	nameRust   = "rust"
)

// Parse converts a selector string into a Language. Only the exact
// lowercase names "python" and "rust" are accepted.
func Parse(s string) (Language, error) {
	switch s {
	case namePython:
		return Python, nil
	case nameRust:
		return Rust, nil
	default:
		return 0, fmt.Errorf("unrecognized language %q: supported languages are %q and %q", s, namePython, nameRust)
	}
}

// String returns the lowercase selector name for the language.
func (l Language) String() string {
	switch l {
	case Python:
		return namePython
	case Rust:
		return nameRust
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// All returns the supported languages in display order.
func All() []Language {
	return []Language{Python, Rust}
}
