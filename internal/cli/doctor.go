package cli

import (
	"fmt"

	"github.com/mkproject-labs/mkproject/internal/doctor"
	"github.com/mkproject-labs/mkproject/internal/language"
	"github.com/spf13/cobra"
)

var doctorLanguage string

func init() {
	doctorCmd.Flags().StringVarP(&doctorLanguage, "language", "l", "", "Check only one language's tools")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the wrapped external tools are available",
	Long:  `Verify that the external tools each bootstrap shells out to (python3, cargo) are on PATH and recent enough.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := language.All()
		if doctorLanguage != "" {
			lang, err := language.Parse(doctorLanguage)
			if err != nil {
				return err
			}
			langs = []language.Language{lang}
		}

		if err := doctor.Check(cmd.Context(), cmd.OutOrStdout(), langs); err != nil {
			return fmt.Errorf("doctor: %w", err)
		}
		return nil
	},
}
