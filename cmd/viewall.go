package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/registry"
)

var viewAllCmd = &cobra.Command{
	Use:     "viewAll",
	Aliases: []string{"viewall"},
	Short:   "Show every group in the registry",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("output")
		if err := validateOutput(format); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		groups, err := registry.NewManager(st, logger).ViewAll()
		if err != nil {
			return err
		}
		if len(groups) == 0 && format == outputText {
			logger.Info("There are no commands in the registry yet.")
			return nil
		}
		return writeGroups(cmd.OutOrStdout(), format, groups)
	},
}

func init() {
	viewAllCmd.Flags().StringP("output", "o", outputText, "output format: text, yaml or json")
	rootCmd.AddCommand(viewAllCmd)
}
