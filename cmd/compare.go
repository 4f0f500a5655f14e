package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

const compareLongDescription = `Compare parses two register-allocator debug dumps, canonicalizes them and
prints a three-level report of everything that differs: functions present on
one side only, blocks present on one side only, and per-variable weight,
register-assignment and avoid-set changes inside shared blocks.

The exit code is 0 when the dumps are equivalent and 1 when any difference
was found, so the command can gate CI jobs directly.`

var maxChangedVarsFlag int
var interactiveFlag bool

var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left-dump> <right-dump>",
		Short: "Diff two register-allocator debug dumps",
		Long:  compareLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			found, err := workflow.Compare(domain.CompareArgs{
				Left:           m.Path(args[0]),
				Right:          m.Path(args[1]),
				MaxChangedVars: maxChangedVarsFlag,
				Interactive:    interactiveFlag,
			})
			if err != nil {
				return err
			}

			if found {
				return errDifferencesFound
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxChangedVarsFlag, "max-changed-vars-per-block", domain.DefaultMaxChangedVars, "changed variables to list per block before eliding the rest")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "browse the report in a TUI instead of printing it")

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
