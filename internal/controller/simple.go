package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

// funcNameWidth bounds the function column in the ranking table; mangled
// names from template-heavy code run to thousands of characters.
const funcNameWidth = 80

// SimpleUI implements domain.UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the rendered comparison line by line.
func (s *SimpleUI) DisplayReport(rep m.Report) error {
	for _, line := range domain.RenderReport(rep) {
		s.printf("%s\n", line)
	}

	return nil
}

// DisplayTopRows renders the head of the largest-cluster ranking as a
// table.
func (s *SimpleUI) DisplayTopRows(rows []m.SCCTopRow, limit int) {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Row", "Blocks", "Kernels", "Max SCC", "Nontriv", "Func"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range rows[:limit] {
		table.Append([]string{
			r.File,
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Blocks),
			strconv.Itoa(r.Kernels),
			strconv.Itoa(r.MaxCluster),
			strconv.Itoa(r.Nontrivial),
			truncateFunc(r.Func),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Showing %d", limit),
		"", "", "", "", "",
		fmt.Sprintf("of %d rows", len(rows)),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())
}

// DisplayCountSummary prints one sample summary on a single line.
func (s *SimpleUI) DisplayCountSummary(name string, cs m.CountSummary) {
	if cs.N == 0 {
		s.printf("%s: (no data)\n", name)

		return
	}

	s.printf("%s: n=%d min=%d p10=%g median=%g p90=%g max=%d mean=%g var=%g dispersion=%g\n",
		name, cs.N, cs.Min, cs.P10, cs.Median, cs.P90, cs.Max, cs.Mean, cs.Var, cs.Dispersion)
}

// DisplayNBFit prints one fitted parameter set on a single line.
func (s *SimpleUI) DisplayNBFit(name string, fit m.NBFit) {
	s.printf("%-8s: mu=%g var=%g r=%g p=%g\n", name, fit.Mu, fit.Var, fit.R, fit.P)
}

// DisplayStructureSummary prints the corpus-level structure report.
func (s *SimpleUI) DisplayStructureSummary(sum m.StructureSummary) {
	s.printf("Files scanned: %d\n", sum.Files)
	s.printf("Rows parsed  : %d\n\n", sum.Rows)

	s.printf("Acyclic CFGs (all singleton SCCs) : %7d (%.2f%%)\n", sum.Acyclic, pct(sum.Acyclic, sum.Rows))
	s.printf("Loopy CFGs (some non-trivial SCC) : %7d (%.2f%%)\n", sum.Loopy, pct(sum.Loopy, sum.Rows))
	s.printf("Exactly one non-trivial SCC       : %7d (%.2f%%)\n", sum.OneNontrivial, pct(sum.OneNontrivial, sum.Rows))

	s.printf("\nLoopy CFGs only:\n")
	s.printf("  Total SCCs             : %d\n", sum.LoopySCCs)
	s.printf("  Singleton SCCs (size 1): %7d (%.2f%%)\n", sum.LoopySingletons, pct(sum.LoopySingletons, sum.LoopySCCs))
	s.printf("  Size-2 SCCs            : %7d (%.2f%%)\n", sum.LoopySize2, pct(sum.LoopySize2, sum.LoopySCCs))
	s.printf("  Size-3 SCCs            : %7d (%.2f%%)\n", sum.LoopySize3, pct(sum.LoopySize3, sum.LoopySCCs))
	s.printf("  Avg per CFG: singletons %.2f, size-2 %.2f, size-3 %.2f\n",
		sum.AvgSingletons, sum.AvgSize2, sum.AvgSize3)

	if sum.OneSize.N > 0 {
		s.printf("\nSingle non-trivial SCC size (when exactly one):\n")
		s.printf("  n=%d min=%d median=%.1f p90=%.1f p99=%.1f max=%d mean=%.2f\n",
			sum.OneSize.N, sum.OneSize.Min, sum.OneSize.Median,
			sum.OneSize.P90, sum.OneSize.P99, sum.OneSize.Max, sum.OneSize.Mean)
	}

	s.printf("\nNon-trivial SCC count per CFG:\n")

	for _, b := range sum.Buckets {
		s.printf("  %d: %d\n", b.Value, b.Count)
	}

	if sum.MoreBuckets {
		s.printf("  ...\n")
	}

	s.printf("\nFraction of nodes in non-trivial SCCs:\n")
	s.printf("  median=%.4f p90=%.4f p99=%.4f max=%.4f\n",
		sum.FracMedian, sum.FracP90, sum.FracP99, sum.FracMax)
}

// Printf writes a formatted line to the command output.
func (s *SimpleUI) Printf(format string, args ...any) {
	s.printf(format, args...)
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return 100 * float64(part) / float64(total)
}

func truncateFunc(fn string) string {
	if len(fn) <= funcNameWidth {
		return fn
	}

	return fn[:funcNameWidth-3] + "..."
}
