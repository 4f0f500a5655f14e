package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

var structureOutDirFlag string
var structureMaxRowsFlag int

// sccStructureCmd represents the scc structure command.
var sccStructureCmd = newSCCStructureCmd()

func newSCCStructureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "structure <file-or-dir>",
		Short: "Report per-CFG SCC structure metrics",
		Long: `Structure decodes the bracketed SCC membership column of every row,
derives per-CFG metrics (acyclic vs loopy, largest SCC, size breakdown,
merge mass, HHI concentration) and prints the aggregate report. The
per-row metrics are written as a CSV next to four distribution charts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Structure(domain.StructureArgs{
				Path:    m.Path(args[0]),
				Pattern: sccPatternFlag,
				OutDir:  m.Path(structureOutDirFlag),
				MaxRows: structureMaxRowsFlag,
			})
		},
	}
	cmd.Flags().StringVar(&structureOutDirFlag, "outdir", "scc_struct_out", "directory to write the CSV and charts to")
	cmd.Flags().IntVar(&structureMaxRowsFlag, "max-rows", 0, "stop after this many rows (0 = no cap)")

	return cmd
}

func init() {
	sccCmd.AddCommand(sccStructureCmd)
}
