package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

var statsOutDirFlag string

// sccStatsCmd represents the scc stats command.
var sccStatsCmd = newSCCStatsCmd()

func newSCCStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file-or-dir>",
		Short: "Summarize block and SCC kernel counts",
		Long: `Stats prints distribution summaries for the block and SCC kernel counts
across all parsed rows and writes histogram and ECDF charts for both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Stats(domain.StatsArgs{
				Path:    m.Path(args[0]),
				Pattern: sccPatternFlag,
				OutDir:  m.Path(statsOutDirFlag),
			})
		},
	}
	cmd.Flags().StringVar(&statsOutDirFlag, "outdir", "scc_stats_out", "directory to write the charts to")

	return cmd
}

func init() {
	sccCmd.AddCommand(sccStatsCmd)
}
