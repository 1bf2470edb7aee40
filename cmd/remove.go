package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
	"github.com/VoxDroid/cmgr/internal/utils"
)

var removeCmd = &cobra.Command{
	Use:     "remcmd <command>",
	Aliases: []string{"rm"},
	Short:   "Remove every entry of a command from a group",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := groupFlag(cmd)
		command := cleanArg("command", args[0])

		if ask, _ := cmd.Flags().GetBool("confirm"); ask {
			msg := fmt.Sprintf("Remove %q from the %q group?", command, group)
			if !utils.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), msg) {
				logger.Info("Aborted.")
				return nil
			}
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		m := registry.NewManager(st, logger)
		n, err := m.RemoveCommand(command, group)
		if err != nil {
			return err
		}
		if n > 0 {
			notice.Success(logger, "A command %q was removed from the %q group.", command, group)
		}
		return nil
	},
}

func init() {
	removeCmd.Flags().StringP("group", "g", "", "group to remove from (default from config, MyCommands)")
	removeCmd.Flags().Bool("confirm", false, "ask before removing")
	rootCmd.AddCommand(removeCmd)
}
