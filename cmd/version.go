package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golash/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golash",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "golash v%s\n", version.Version)
		fmt.Fprintln(out, "Cargo Lashing Restraint Calculator")
		fmt.Fprintf(out, "Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
