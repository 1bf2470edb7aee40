package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmgr/internal/exporter"
	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the registry to a YAML file",
	Long: `Write every group to a YAML document that import can read back.
Use - to write to stdout. Without a file, ./cmgr-YYYY-MM-DD.yaml is used and
suffixed with -N rather than overwriting an existing file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		groups, err := registry.NewManager(st, logger).ViewAll()
		if err != nil {
			return err
		}

		if len(args) == 1 && args[0] == "-" {
			return exporter.Encode(cmd.OutOrStdout(), groups)
		}
		fs := fsFactory()
		dst := ""
		if len(args) == 1 {
			dst = args[0]
		} else if dst, err = defaultExportPath(fs, time.Now()); err != nil {
			return err
		}
		if err := exporter.Export(fs, dst, groups); err != nil {
			return err
		}
		notice.Success(logger, "Exported %d groups to %s.", len(groups), dst)
		return nil
	},
}

// defaultExportPath picks ./cmgr-<date>.yaml, adding -N until the name is free.
func defaultExportPath(fs afero.Fs, now time.Time) (string, error) {
	date := now.UTC().Format("2006-01-02")
	dst := fmt.Sprintf("cmgr-%s.yaml", date)
	for i := 1; ; i++ {
		exists, err := afero.Exists(fs, dst)
		if err != nil {
			return "", err
		}
		if !exists {
			return dst, nil
		}
		dst = fmt.Sprintf("cmgr-%s-%d.yaml", date, i)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
