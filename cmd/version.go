package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofsi/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofsi",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gofsi v%s\n", version.Version)
		fmt.Fprintln(out, "Fire Safety Inspector's Calculator")
		fmt.Fprintln(out, "Based on RA 9514 (Fire Code of the Philippines) and NFPA standards")
		if verbose {
			fmt.Fprintf(out, "Commit: %s\nBuilt:  %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
