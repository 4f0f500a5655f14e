package domain

import (
	m "github.com/mouse-blink/regdump/internal/model"
)

// UI is how workflow results reach the user. The controller package
// provides the plain-text implementation and the interactive browser.
type UI interface {
	DisplayReport(rep m.Report) error
	DisplayTopRows(rows []m.SCCTopRow, limit int)
	DisplayCountSummary(name string, s m.CountSummary)
	DisplayNBFit(name string, fit m.NBFit)
	DisplayStructureSummary(sum m.StructureSummary)
	Printf(format string, args ...any)
}

// UIFactory builds the UI for one invocation; interactive selects the
// terminal browser when the environment allows it.
type UIFactory func(interactive bool) UI
