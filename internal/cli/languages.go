package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/mkproject-labs/mkproject/internal/language"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(languagesCmd)
}

// languageTools names the external tools each bootstrap drives, for
// display only.
var languageTools = map[language.Language]string{
	language.Python: "python3 -m venv, pip install",
	language.Rust:   "cargo new",
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported project languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tTOOLS")
		for _, lang := range language.All() {
			fmt.Fprintf(w, "%s\t%s\n", lang, languageTools[lang])
		}
		return w.Flush()
	},
}
