package cmd

import (
	"github.com/spf13/cobra"
)

var sccPatternFlag string

// sccCmd groups the SCC artifact analyses.
var sccCmd = newSCCCmd()

func newSCCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scc",
		Short: "Analyze SCC structure artifacts",
		Long: `The scc subcommands analyze the *_scc.csv artifacts the allocator writes
next to its debug dumps: one row per compiled function with its block
count, SCC kernel count and the bracketed SCC membership structure.`,
	}
	cmd.PersistentFlags().StringVar(&sccPatternFlag, "pattern", "*_scc.csv", "glob matched against file names when PATH is a directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(sccCmd)
}
