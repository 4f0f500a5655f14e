package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

// TUI implements domain.UI with a Bubble Tea browser for comparison
// reports. The SCC analysis surfaces stay plain prints; their output is
// meant to be piped and the browser would add nothing.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReport opens the interactive report browser. An empty report
// prints the usual single line instead of opening a screen to show
// nothing.
func (t *TUI) DisplayReport(rep m.Report) error {
	if rep.Empty() {
		_, _ = fmt.Fprintf(t.output, "%s\n", domain.NoDifferences)

		return nil
	}

	program := tea.NewProgram(newCompareModel(rep), tea.WithOutput(t.output))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive report: %w", err)
	}

	return nil
}

// DisplayTopRows prints the ranking head without table decoration.
func (t *TUI) DisplayTopRows(rows []m.SCCTopRow, limit int) {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	for _, r := range rows[:limit] {
		_, _ = fmt.Fprintf(t.output, "%s:%d max=%d blocks=%d %s\n",
			r.File, r.Line, r.MaxCluster, r.Blocks, r.Func)
	}
}

// DisplayCountSummary prints one sample summary.
func (t *TUI) DisplayCountSummary(name string, cs m.CountSummary) {
	_, _ = fmt.Fprintf(t.output, "%s: n=%d mean=%g\n", name, cs.N, cs.Mean)
}

// DisplayNBFit prints one fitted parameter set.
func (t *TUI) DisplayNBFit(name string, fit m.NBFit) {
	_, _ = fmt.Fprintf(t.output, "%s: r=%g p=%g\n", name, fit.R, fit.P)
}

// DisplayStructureSummary prints the headline structure counts.
func (t *TUI) DisplayStructureSummary(sum m.StructureSummary) {
	_, _ = fmt.Fprintf(t.output, "rows=%d acyclic=%d loopy=%d\n", sum.Rows, sum.Acyclic, sum.Loopy)
}

// Printf writes a formatted line to the output.
func (t *TUI) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
