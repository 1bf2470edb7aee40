package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/registry"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the commands of a group as stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("output")
		if err := validateOutput(format); err != nil {
			return err
		}
		group := groupFlag(cmd)

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		entries, err := registry.NewManager(st, logger).View(group)
		if err != nil {
			return err
		}
		return writeGroups(cmd.OutOrStdout(), format, []registry.Group{{Name: group, Commands: entries}})
	},
}

func init() {
	viewCmd.Flags().StringP("group", "g", "", "group to show (default from config, MyCommands)")
	viewCmd.Flags().StringP("output", "o", outputText, "output format: text, yaml or json")
	rootCmd.AddCommand(viewCmd)
}
