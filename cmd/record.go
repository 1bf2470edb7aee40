package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/recorder"
	"github.com/VoxDroid/cmgr/internal/registry"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record commands from stdin into a group",
	Long: `Read commands one per line and add each to the group. Lines starting with
# are skipped. Finish with EOF (Ctrl-D on Unix, Ctrl-Z on Windows) or a line
containing only :end.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		group := groupFlag(cmd)
		var opts registry.AddOptions
		if cmd.Flags().Changed("priority") {
			p, _ := cmd.Flags().GetInt("priority")
			opts = registry.WithPriority(p)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		fmt.Fprintln(cmd.ErrOrStderr(), "Enter commands, one per line. End with EOF (Ctrl-D on Unix, Ctrl-Z on Windows).")
		cmds, err := recorder.RecordCommands(cmd.InOrStdin())
		if err != nil {
			return err
		}
		kept := cmds[:0]
		for _, c := range cmds {
			if c = cleanArg("recorded command", c); c != "" {
				kept = append(kept, c)
			}
		}
		cmds = kept
		if len(cmds) == 0 {
			logger.Info("No commands recorded.")
			return nil
		}

		n, err := recorder.SaveRecorded(registry.NewManager(st, logger), group, opts, cmds)
		if err != nil {
			return err
		}
		notice.Success(logger, "Recorded %d commands into the %q group.", n, group)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringP("group", "g", "", "group to record into (default from config, MyCommands)")
	recordCmd.Flags().IntP("priority", "p", registry.DefaultPriority, "priority for every recorded command")
	rootCmd.AddCommand(recordCmd)
}
