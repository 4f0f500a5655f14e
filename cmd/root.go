// Package cmd provides the root command and CLI setup for regdump.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/adapter"
	"github.com/mouse-blink/regdump/internal/controller"
	"github.com/mouse-blink/regdump/internal/domain"
	"github.com/mouse-blink/regdump/internal/logger"
)

var fs adapter.FS
var plots adapter.PlotWriter
var workflow domain.Workflow

func init() {
	fs = adapter.NewLocalFS()
	plots = adapter.NewPlotWriter()
	workflow = domain.NewWorkflow(fs, plots, newUI)
}

// newUI picks the interactive browser only when it was asked for and
// stdout really is a terminal; everything else gets plain deterministic
// output.
func newUI(interactive bool) domain.UI {
	return controller.NewUI(rootCmd, interactive && controller.IsTTY(os.Stdout))
}

// errDifferencesFound makes a difference-carrying comparison exit non-zero
// without printing an error on top of the report.
var errDifferencesFound = errors.New("differences found")

var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regdump",
		Short: "Analyze register-allocator debug dumps",
		Long: `Regdump works on the debug output of the SSA register allocator. It
diffs the per-block live-value dumps produced by two compiler runs and
summarizes the SCC structure artifacts written alongside them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Setup(logLevelFlag)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log verbosity: debug, info, warn or error")

	return cmd
}

// Execute runs the command tree and maps the outcome to the process exit
// code: zero when clean, one when differences were found or anything
// failed. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if !errors.Is(err, errDifferencesFound) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	os.Exit(1)
}
