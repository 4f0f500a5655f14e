package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

var fitOutDirFlag string
var fitMaxXFlag int
var fitMaxYFlag int

// sccFitCmd represents the scc fit command.
var sccFitCmd = newSCCFitCmd()

func newSCCFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit <file-or-dir>",
		Short: "Fit a negative binomial to the count distributions",
		Long: `Fit estimates negative binomial parameters for the block and SCC kernel
count distributions by the method of moments and writes log-x histogram
and ECDF charts with the fitted curve overlaid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Fit(domain.FitArgs{
				Path:    m.Path(args[0]),
				Pattern: sccPatternFlag,
				OutDir:  m.Path(fitOutDirFlag),
				MaxX:    fitMaxXFlag,
				MaxY:    fitMaxYFlag,
			})
		},
	}
	cmd.Flags().StringVar(&fitOutDirFlag, "outdir", "scc_stats_out", "directory to write the charts to")
	cmd.Flags().IntVar(&fitMaxXFlag, "max-x", 2000, "x-axis limit and pmf tabulation bound")
	cmd.Flags().IntVar(&fitMaxYFlag, "max-y", 20000, "histogram y-axis limit")

	return cmd
}

func init() {
	sccCmd.AddCommand(sccFitCmd)
}
