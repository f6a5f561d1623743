// Package doctor checks that the external tools each language toolchain
// shells out to are resolvable and recent enough.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mkproject-labs/mkproject/internal/language"
	textlanguage "golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(textlanguage.English)

// Tool describes one external executable a toolchain depends on.
type Tool struct {
	Name       string // executable name looked up on PATH
	MinVersion string // semver floor; empty means presence is enough
}

// toolsFor maps each language to the executables its bootstrap invokes.
// The venv's pip is created by python3 itself, so only the entry tools
// are checked here.
func toolsFor(lang language.Language) []Tool {
	switch lang {
	case language.Python:
		return []Tool{{Name: "python3", MinVersion: "3.8.0"}}
	case language.Rust:
		return []Tool{{Name: "cargo", MinVersion: "1.64.0"}}
	default:
		return nil
	}
}

// Check reports on every tool required by the given languages, writing
// one [ OK ]/[WARN]/[MISS] row per tool. It returns an error when any
// required tool is missing from PATH.
func Check(ctx context.Context, w io.Writer, langs []language.Language) error {
	fmt.Fprintln(w, "Toolchain check:")

	var total, found int
	for _, lang := range langs {
		for _, tool := range toolsFor(lang) {
			total++
			if checkTool(ctx, w, lang, tool) {
				found++
			}
		}
	}

	printer.Fprintf(w, "%d of %d required tools found\n", found, total)
	if found < total {
		return fmt.Errorf("%d required tool(s) missing", total-found)
	}
	return nil
}

// checkTool verifies one tool and reports whether it was found on PATH.
// A version below the floor is a warning, not a failure: the bootstrap
// may still work, so only absence is fatal.
func checkTool(ctx context.Context, w io.Writer, lang language.Language, tool Tool) bool {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found (needed for %s projects)\n", tool.Name, lang)
		return false
	}

	if tool.MinVersion == "" {
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", tool.Name, path)
		return true
	}

	version, err := probeVersion(ctx, path)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s found at %s, version probe failed: %v\n", tool.Name, path, err)
		return true
	}

	old, err := isOlderThan(version, tool.MinVersion)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s found at %s, unparseable version %q\n", tool.Name, path, version)
		return true
	}
	if old {
		fmt.Fprintf(w, "  [WARN] %s %s is older than the supported minimum %s\n", tool.Name, version, tool.MinVersion)
		return true
	}

	fmt.Fprintf(w, "  [ OK ] %s %s found at %s\n", tool.Name, version, path)
	return true
}

// probeVersion runs `<path> --version` and extracts the version token
// from its first output line.
func probeVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running --version: %w", err)
	}

	line := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
	version := extractVersion(line)
	if version == "" {
		return "", fmt.Errorf("no version token in %q", line)
	}
	return version, nil
}

// extractVersion returns the first whitespace-separated field of line
// that parses as a semantic version ("Python 3.11.2" → "3.11.2",
// "cargo 1.76.0 (c84b367 2024-01-18)" → "1.76.0").
func extractVersion(line string) string {
	for _, field := range strings.Fields(line) {
		if _, err := parseSemver(field); err == nil {
			return field
		}
	}
	return ""
}
