package cmd

import (
	"fmt"

	"github.com/philipparndt/antennareader/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "antennareader %s\n", version.GetFullVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
