package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// Runner spawns a command line and waits for it. It allows tests to inject
// fake implementations without running real shell commands.
type Runner interface {
	Execute(ctx context.Context, command string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error
}

// ShellRunner runs command lines through the platform shell.
type ShellRunner struct {
	DryRun bool
	Shell  string // optional override (e.g., "pwsh")
}

// lookPath is swapped out by tests.
var lookPath = exec.LookPath

// CommandLine returns command with args appended, each quoted so the shell
// sees it as a single word.
func CommandLine(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + shellquote.Join(args...)
}

// Execute runs command plus args using an OS-appropriate shell invocation
// (`bash -c` on Unix, `cmd /C` on Windows). The given streams are handed to
// the child directly, so passing os.Stdin/os.Stdout/os.Stderr makes it
// inherit the caller's terminal. It blocks until the child exits; a non-zero
// exit surfaces as a wrapped *exec.ExitError.
func (r *ShellRunner) Execute(ctx context.Context, command string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	line := CommandLine(command, args)

	if r.DryRun {
		_, _ = fmt.Fprintf(stdout, "dry-run: %s\n", line)
		return nil
	}

	shell, shellArgs := shellInvocation(line, r.Shell)
	if _, err := lookPath(shell); err != nil {
		return fmt.Errorf("shell not found in PATH: %s: %w", shell, err)
	}

	cmd := exec.CommandContext(ctx, shell, shellArgs...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", line, err)
	}
	return nil
}

// shellInvocation returns the shell executable and arguments for the platform.
// Optional `overrideShell` lets callers request an alternate shell (e.g., pwsh).
func shellInvocation(command string, overrideShell string) (string, []string) {
	if overrideShell != "" {
		switch overrideShell {
		case "pwsh":
			return "pwsh", []string{"-Command", command}
		case "powershell":
			// Windows ships legacy powershell; elsewhere only pwsh exists
			if runtime.GOOS == "windows" {
				if p, err := lookPath("powershell"); err == nil {
					return p, []string{"-Command", command}
				}
				if p, err := lookPath("pwsh"); err == nil {
					return p, []string{"-Command", command}
				}
				return "powershell", []string{"-Command", command}
			}
			return "pwsh", []string{"-Command", command}
		case "cmd":
			return "cmd", []string{"/C", command}
		default:
			return overrideShell, []string{"-c", command}
		}
	}

	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "bash", []string{"-c", command}
}
