package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/VoxDroid/cmgr/internal/exporter"
	"github.com/VoxDroid/cmgr/internal/registry"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML, outputJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
}

// writeGroups renders groups in format. YAML and JSON use the export
// document shape so the output can be fed back to import.
func writeGroups(w io.Writer, format string, groups []registry.Group) error {
	switch format {
	case outputYAML:
		return exporter.Encode(w, groups)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exporter.NewDocument(groups))
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, g.Name); err != nil {
			return err
		}
		if len(g.Commands) == 0 {
			_, _ = fmt.Fprintln(w, "  (no commands)")
			continue
		}
		for _, c := range g.Commands {
			_, _ = fmt.Fprintf(w, "  [%s] %s\n", priorityLabel(c.Priority), c.Command)
		}
	}
	return nil
}

func priorityLabel(p int) string {
	if p == registry.LowestPriority {
		return "-"
	}
	return fmt.Sprint(p)
}
