package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Use != "regdump" {
		t.Errorf("newRootCmd() Use = %v, want regdump", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}

	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("newRootCmd() should leave error printing to Execute()")
	}

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	if levelFlag == nil {
		t.Fatal("newRootCmd() missing --log-level flag")
	}

	if levelFlag.DefValue != "info" {
		t.Errorf("--log-level default = %v, want info", levelFlag.DefValue)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	subs := make(map[string]*cobra.Command)
	for _, sub := range rootCmd.Commands() {
		subs[sub.Name()] = sub
	}

	if subs["compare"] == nil {
		t.Error("rootCmd missing compare subcommand")
	}

	scc := subs["scc"]
	if scc == nil {
		t.Fatal("rootCmd missing scc subcommand")
	}

	kids := make(map[string]bool)
	for _, sub := range scc.Commands() {
		kids[sub.Name()] = true
	}

	for _, want := range []string{"top", "stats", "structure", "fit"} {
		if !kids[want] {
			t.Errorf("scc missing %s subcommand", want)
		}
	}
}

func TestInit(t *testing.T) {
	if fs == nil {
		t.Error("init() fs is nil")
	}

	if plots == nil {
		t.Error("init() plots is nil")
	}

	if workflow == nil {
		t.Error("init() workflow is nil")
	}
}

func TestRootCmd_LogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.AddCommand(&cobra.Command{
		Use:  "noop",
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	})

	cmd.SetArgs([]string{"noop", "--log-level", "debug"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	cmd.SetArgs([]string{"noop", "--log-level", "loud"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown log level") {
		t.Fatalf("Execute() error = %v, want unknown log level", err)
	}

	logLevelFlag = "info"
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// A clean run must not reach os.Exit.
	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd = &cobra.Command{
			Use:           "test",
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(_ *cobra.Command, _ []string) error {
				return os.ErrPermission
			},
		}

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exec.ExitError, got %v (output: %s)", err, output)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "Error:") {
		t.Errorf("expected error message in output, got: %s", output)
	}
}

func TestExecute_ProcessLevel_DifferencesFound(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_DIFFS") == "1" {
		rootCmd = &cobra.Command{
			Use:           "test",
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(_ *cobra.Command, _ []string) error {
				return errDifferencesFound
			},
		}

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_DifferencesFound")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_DIFFS=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exec.ExitError, got %v (output: %s)", err, output)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", exitErr.ExitCode())
	}

	// Differences exit non-zero but are not an error condition.
	if strings.Contains(string(output), "Error:") {
		t.Errorf("differences exit should not print an error, got: %s", output)
	}
}
