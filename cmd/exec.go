package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/executor"
)

// newRunner builds the runner exec hands to the executor. Tests replace it.
var newRunner = func(dryRun bool, shell string) executor.Runner {
	return &executor.ShellRunner{DryRun: dryRun, Shell: shell}
}

var execCmd = &cobra.Command{
	Use:   "exec [-- args...]",
	Short: "Run a registered command",
	Long: `Pick one registered command and run it with the terminal attached.

With --cmd the command whose text is exactly that string runs. With one or
more --pattern the highest-priority command matching all of them runs
(shell-style globs, a leading ! negates). Otherwise the highest-priority
command runs. Without --group every group is searched.

Arguments after -- are appended to the command line:

  cmgr exec -g web -c "npm test" -- --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && cmd.ArgsLenAtDash() != 0 {
			return errors.New("extra arguments must follow --")
		}
		group, _ := cmd.Flags().GetString("group")
		name, _ := cmd.Flags().GetString("cmd")
		patterns, _ := cmd.Flags().GetStringArray("pattern")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if group != "" {
			group = cleanArg("group name", group)
		}
		if name != "" {
			name = cleanArg("command", name)
		}

		req := executor.Request{Group: group, Name: name, Patterns: patterns, Args: args}
		if err := req.Validate(); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		return executor.Dispatch(cmd.Context(), st, req,
			executor.WithRunner(newRunner(dryRun, cfg.Shell)),
			executor.WithLogger(logger),
			executor.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		)
	},
}

func init() {
	execCmd.Flags().StringP("group", "g", "", "search only this group")
	execCmd.Flags().StringP("cmd", "c", "", "run the command with exactly this text")
	execCmd.Flags().StringArrayP("pattern", "t", nil, "glob the command must match (repeatable)")
	execCmd.Flags().Bool("dry-run", false, "print the command line instead of running it")
	rootCmd.AddCommand(execCmd)
}
