// Package controller provides the output surfaces for comparison reports
// and SCC analysis: a plain-text printer and an interactive browser.
package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
)

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns the Bubble Tea browser; otherwise the plain printer,
// whose output is what scripts and tests consume.
func NewUI(cmd *cobra.Command, useTTY bool) domain.UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the given writer is an interactive terminal rather
// than a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
