package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
)

var addCmd = &cobra.Command{
	Use:     "addcmd <command>",
	Aliases: []string{"add"},
	Short:   "Add a command to a group",
	Long: `Add a shell command line to a group, creating the group if needed.
Quote the command so it arrives as a single argument:

  cmgr addcmd "npm run build" -g web -p 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := groupFlag(cmd)
		command := cleanArg("command", args[0])
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

		m := registry.NewManager(st, logger)
		if err := m.AddCommand(command, group, opts); err != nil {
			return err
		}
		notice.Success(logger, "A command %q was added to the %q group.", command, group)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("group", "g", "", "group to add to (default from config, MyCommands)")
	addCmd.Flags().IntP("priority", "p", registry.DefaultPriority, "priority; higher runs first")
	rootCmd.AddCommand(addCmd)
}
