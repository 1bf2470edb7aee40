package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/VoxDroid/cmgr/internal/config"
	"github.com/VoxDroid/cmgr/internal/executor"
)

// fakeRunner implements the executor.Runner interface for tests.
type fakeRunner struct {
	calls []string
	err   error
}

func (f *fakeRunner) Execute(_ context.Context, command string, args []string, _ io.Reader, stdout io.Writer, _ io.Writer) error {
	line := executor.CommandLine(command, args)
	f.calls = append(f.calls, line)
	_, _ = fmt.Fprintln(stdout, "ran:", line)
	return f.err
}

func setupTempHome(t *testing.T) string {
	t.Helper()
	d := t.TempDir()
	t.Setenv(config.EnvHome, d)
	t.Setenv(config.EnvDB, "")
	t.Setenv("NO_COLOR", "1")
	return d
}

// resetFlags puts every flag back to its default so one Execute does not
// leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, args ...string) (string, string) {
	t.Helper()
	out, errOut, err := runCLI(t, "", args...)
	if err != nil {
		t.Fatalf("cmgr %s: %v\nstderr: %s", strings.Join(args, " "), err, errOut)
	}
	return out, errOut
}
