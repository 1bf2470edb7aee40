package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/exporter"
	"github.com/VoxDroid/cmgr/internal/importer"
	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import groups from a YAML file written by export",
	Long: `Read an exported YAML document (or - for stdin) into the registry. By
default the imported commands are appended to existing groups; --replace
overwrites each imported group instead. Groups not in the file are untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			doc exporter.Document
			err error
		)
		if args[0] == "-" {
			doc, err = importer.Decode(cmd.InOrStdin())
		} else {
			doc, err = importer.Load(fsFactory(), args[0])
		}
		if err != nil {
			return err
		}
		replace, _ := cmd.Flags().GetBool("replace")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		sum, err := importer.Apply(registry.NewManager(st, logger), doc, replace)
		if err != nil {
			return err
		}
		notice.Success(logger, "Imported %d commands in %d groups.", sum.Commands, sum.Groups)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("replace", false, "overwrite imported groups instead of appending")
	rootCmd.AddCommand(importCmd)
}
