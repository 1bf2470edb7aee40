package cmd

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/prashantv/gostub"

	"github.com/VoxDroid/cmgr/internal/executor"
)

func stubRunner(t *testing.T) *fakeRunner {
	t.Helper()
	f := &fakeRunner{}
	stubs := gostub.Stub(&newRunner, func(bool, string) executor.Runner { return f })
	t.Cleanup(stubs.Reset)
	return f
}

func seedPriorities(t *testing.T) {
	t.Helper()
	mustRun(t, "addcmd", "echo low", "-g", "g", "-p", "1")
	mustRun(t, "addcmd", "echo medA", "-g", "g", "-p", "3")
	mustRun(t, "addcmd", "echo medB", "-g", "g", "-p", "3")
	mustRun(t, "addcmd", "echo high", "-g", "g", "-p", "5")
	mustRun(t, "addcmd", "ls other", "-g", "h", "-p", "9")
}

func TestExec_Selection(t *testing.T) {
	setupTempHome(t)
	seedPriorities(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"grouped top", []string{"exec", "-g", "g"}, "echo high"},
		{"ungrouped top", []string{"exec"}, "ls other"},
		{"by name", []string{"exec", "-g", "g", "-c", "echo low"}, "echo low"},
		{"pattern tie", []string{"exec", "-g", "g", "-t", "echo med*"}, "echo medA"},
		{"pattern only B", []string{"exec", "-t", "*B"}, "echo medB"},
		{"all patterns", []string{"exec", "-t", "echo *", "-t", "!*high"}, "echo medA"},
		{"extra args", []string{"exec", "-g", "g", "--", "--flag", "a b"}, "echo high --flag 'a b'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := stubRunner(t)
			_, errOut := mustRun(t, tc.args...)
			if len(f.calls) != 1 || f.calls[0] != tc.want {
				t.Fatalf("calls = %v, want [%s]", f.calls, tc.want)
			}
			if !strings.Contains(errOut, "Going to execute: ") {
				t.Fatalf("missing execute notice: %q", errOut)
			}
		})
	}
}

func TestExec_SoftMisses(t *testing.T) {
	setupTempHome(t)
	seedPriorities(t)
	f := stubRunner(t)

	_, errOut := mustRun(t, "exec", "-g", "g", "-c", "echo hgih")
	if !strings.Contains(errOut, `Specified command "echo hgih" was not found in the "g" group`) {
		t.Fatalf("expected warning, got %q", errOut)
	}
	_, errOut = mustRun(t, "exec", "-t", "rm *")
	if !strings.Contains(errOut, `There are no registered commands matching "rm *".`) {
		t.Fatalf("expected pattern notice, got %q", errOut)
	}
	mustRun(t, "addcmd", "x", "-g", "empty")
	mustRun(t, "remcmd", "x", "-g", "empty")
	_, errOut = mustRun(t, "exec", "-g", "empty")
	if !strings.Contains(errOut, `There are no registered commands in the "empty" group.`) {
		t.Fatalf("expected empty group notice, got %q", errOut)
	}
	if len(f.calls) != 0 {
		t.Fatalf("nothing should run, got %v", f.calls)
	}
}

func TestExec_MutuallyExclusive(t *testing.T) {
	setupTempHome(t)
	f := stubRunner(t)

	_, _, err := runCLI(t, "", "exec", "-c", "a", "-t", "b")
	if !errors.Is(err, executor.ErrMutuallyExclusive) {
		t.Fatalf("expected ErrMutuallyExclusive, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("nothing should run")
	}
}

func TestExec_MissingGroup(t *testing.T) {
	setupTempHome(t)
	stubRunner(t)
	if _, _, err := runCLI(t, "", "exec", "-g", "nope"); err == nil {
		t.Fatalf("expected group not found error")
	}
}

func TestExec_ArgsNeedDash(t *testing.T) {
	setupTempHome(t)
	stubRunner(t)
	if _, _, err := runCLI(t, "", "exec", "stray"); err == nil {
		t.Fatalf("expected error for arguments before --")
	}
}

func TestExec_DryRunUsesShellRunner(t *testing.T) {
	setupTempHome(t)
	mustRun(t, "addcmd", "echo hi", "-g", "g")

	out, _ := mustRun(t, "exec", "-g", "g", "--dry-run", "--", "x")
	if out != "dry-run: echo hi x\n" {
		t.Fatalf("unexpected dry-run output: %q", out)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != 0 {
		t.Fatalf("exitCode(nil) = %d", got)
	}
	if got := exitCode(errors.New("boom")); got != 1 {
		t.Fatalf("exitCode(plain) = %d", got)
	}
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	err := exec.Command("bash", "-c", "exit 7").Run()
	wrapped := &wrapErr{err}
	if got := exitCode(wrapped); got != 7 {
		t.Fatalf("exitCode(exit 7) = %d", got)
	}
}

type wrapErr struct{ err error }

func (w *wrapErr) Error() string { return "command failed: " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
