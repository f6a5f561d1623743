package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// ProcessError reports an external tool that ran to completion but
// exited nonzero. Code is the child's own exit code; the top level
// propagates it as the process exit status.
type ProcessError struct {
	Tool   string // display name, e.g. "cargo new"
	Code   int
	Stderr string // trailing stderr output, for the message
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("running `%s` command, exit code: %d", e.Tool, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ExitCode reports whether err wraps a ProcessError and, if so, the
// child exit code to propagate. Codes below 1 are normalized to 1.
func ExitCode(err error) (int, bool) {
	var pe *ProcessError
	if !errors.As(err, &pe) {
		return 0, false
	}
	if pe.Code < 1 {
		return 1, true
	}
	return pe.Code, true
}

// run executes an external command, capturing its output. When stdout or
// stderr writers are non-nil the child's output is mirrored to them as
// well. A nonzero exit becomes a *ProcessError; failure to start the
// command at all is an ordinary wrapped error.
func run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if stdout != nil {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	}
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &ProcessError{
			Tool:   displayName(name, args),
			Code:   exitErr.ExitCode(),
			Stderr: lastLine(stderrBuf.String()),
		}
	}
	return fmt.Errorf("executing %s: %w", displayName(name, args), err)
}

// displayName builds the human-readable tool name for error messages:
// the command basename plus its subcommand when the first argument is
// not a flag ("cargo new", "pip install", "python3").
func displayName(name string, args []string) string {
	tool := filepath.Base(name)
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		tool += " " + args[0]
	}
	return tool
}

// lastLine returns the final non-empty line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
