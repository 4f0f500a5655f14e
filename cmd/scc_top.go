package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

var topFlag int
var topOutFlag string

// sccTopCmd represents the scc top command.
var sccTopCmd = newSCCTopCmd()

func newSCCTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top <file-or-dir>",
		Short: "Rank functions by largest SCC cluster",
		Long: `Top parses every SCC row under the given path, ranks the functions by
the size of their largest cluster (ties broken by block count) and prints
the head of the ranking. The full ranking can be written to a CSV file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.TopSCCs(domain.TopArgs{
				Path:    m.Path(args[0]),
				Pattern: sccPatternFlag,
				Top:     topFlag,
				Out:     m.Path(topOutFlag),
			})
		},
	}
	cmd.Flags().IntVar(&topFlag, "top", 50, "number of rows to print")
	cmd.Flags().StringVar(&topOutFlag, "out", "", "write the full ranking to this CSV file")

	return cmd
}

func init() {
	sccCmd.AddCommand(sccTopCmd)
}
