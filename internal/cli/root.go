package cli

import (
	"fmt"
	"os"

	"github.com/mkproject-labs/mkproject/internal/branding"
	"github.com/mkproject-labs/mkproject/internal/config"
	"github.com/mkproject-labs/mkproject/internal/language"
	"github.com/mkproject-labs/mkproject/internal/project"
	"github.com/mkproject-labs/mkproject/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var languageFlag string

func init() {
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Project language: python or rust (env: "+branding.EnvVar("LANGUAGE")+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " --language <python|rust> <path>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new project directory by driving the language's own
tooling: python3/venv/pip for Python, cargo for Rust. The final path
component becomes the project name and lands in the generated README.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		selector := languageFlag
		if selector == "" {
			selector = config.DefaultLanguage()
		}
		if selector == "" {
			return fmt.Errorf("--language is required (or set %s)", branding.EnvVar("LANGUAGE"))
		}

		lang, err := language.Parse(selector)
		if err != nil {
			return err
		}

		req := project.Request{Path: args[0], Language: lang}
		return bootstrap(cmd, req)
	},
}

// bootstrap dispatches the request to its language toolchain. In verbose
// mode the wrapped tools' output streams through to the terminal.
func bootstrap(cmd *cobra.Command, req project.Request) error {
	b := toolchain.Dispatch(req.Language)
	if config.Verbose() {
		switch tc := b.(type) {
		case *toolchain.PythonToolchain:
			tc.Stdout = cmd.OutOrStdout()
			tc.Stderr = cmd.ErrOrStderr()
		case *toolchain.RustToolchain:
			tc.Stdout = cmd.OutOrStdout()
			tc.Stderr = cmd.ErrOrStderr()
		}
	}

	if err := b.Bootstrap(cmd.Context(), req.Path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s project at %s\n", req.Language, req.Path)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed as "Error: ..." here; the caller decides the exit
// code (propagating a failed tool's own code).
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
