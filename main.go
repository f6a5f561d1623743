package main

import (
	"os"

	"github.com/mkproject-labs/mkproject/internal/cli"
	"github.com/mkproject-labs/mkproject/internal/toolchain"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// A wrapped tool that exited nonzero decides our own exit code,
		// so scripting callers can tell which external tool failed.
		if code, ok := toolchain.ExitCode(err); ok {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
