// Package importer loads an exported YAML document back into the registry.
package importer

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/VoxDroid/cmgr/internal/exporter"
	"github.com/VoxDroid/cmgr/internal/nameutil"
	"github.com/VoxDroid/cmgr/internal/registry"
)

// Summary reports what Apply changed.
type Summary struct {
	Groups   int
	Commands int
}

// Decode reads and validates a document from r.
func Decode(r io.Reader) (exporter.Document, error) {
	var doc exporter.Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return doc, fmt.Errorf("decode import: document is empty")
		}
		return doc, fmt.Errorf("decode import: %w", err)
	}
	if err := Validate(doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Load reads and validates the document at path on fs.
func Load(fs afero.Fs, path string) (exporter.Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return exporter.Document{}, fmt.Errorf("open import: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Validate collects every problem in doc instead of stopping at the first.
func Validate(doc exporter.Document) error {
	var result *multierror.Error
	if doc.Version > exporter.FormatVersion {
		result = multierror.Append(result, fmt.Errorf("unsupported version %d (max %d)", doc.Version, exporter.FormatVersion))
	}
	seen := map[string]bool{}
	for gi, g := range doc.Groups {
		if err := nameutil.ValidateGroupName(g.Name); err != nil {
			result = multierror.Append(result, fmt.Errorf("groups[%d]: %w", gi, err))
		} else if seen[g.Name] {
			result = multierror.Append(result, fmt.Errorf("groups[%d]: duplicate group %q", gi, g.Name))
		}
		seen[g.Name] = true
		for ci, c := range g.Commands {
			if err := nameutil.ValidateCommand(c.Command); err != nil {
				result = multierror.Append(result, fmt.Errorf("groups[%d].commands[%d]: %w", gi, ci, err))
			}
			if c.Legacy && c.Priority != nil {
				result = multierror.Append(result, fmt.Errorf("groups[%d].commands[%d]: legacy entry cannot carry a priority", gi, ci))
			}
		}
	}
	return result.ErrorOrNil()
}

// Apply writes doc into the registry. With replace, each imported group
// overwrites the stored one; otherwise its commands are appended. A missing
// priority becomes DefaultPriority and a legacy entry gets LowestPriority back.
func Apply(m *registry.Manager, doc exporter.Document, replace bool) (Summary, error) {
	var sum Summary
	for _, g := range doc.Groups {
		entries := make([]registry.CommandEntry, 0, len(g.Commands))
		for _, c := range g.Commands {
			p := registry.DefaultPriority
			switch {
			case c.Legacy:
				p = registry.LowestPriority
			case c.Priority != nil:
				p = *c.Priority
			}
			entries = append(entries, registry.CommandEntry{Command: c.Command, Priority: p})
		}

		var err error
		if replace {
			err = m.ReplaceGroup(g.Name, entries)
		} else {
			err = m.MergeGroup(g.Name, entries)
		}
		if err != nil {
			return sum, fmt.Errorf("import group %q: %w", g.Name, err)
		}
		sum.Groups++
		sum.Commands += len(entries)
	}
	return sum, nil
}
