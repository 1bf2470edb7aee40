// Package exporter writes the registry to a portable YAML document.
package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/VoxDroid/cmgr/internal/registry"
)

// FormatVersion is written into every exported document.
const FormatVersion = 1

// Document is the on-disk export format shared with the importer.
type Document struct {
	Version int        `json:"version" yaml:"version"`
	Groups  []GroupDoc `json:"groups" yaml:"groups"`
}

// GroupDoc is one exported group.
type GroupDoc struct {
	Name     string     `json:"name" yaml:"name"`
	Commands []EntryDoc `json:"commands" yaml:"commands"`
}

// EntryDoc is one exported command. Legacy entries that never had a priority
// carry Legacy instead, so they keep ranking below every other entry.
type EntryDoc struct {
	Command  string `json:"command" yaml:"command"`
	Priority *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Legacy   bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

// NewDocument converts groups to a Document, keeping their order.
func NewDocument(groups []registry.Group) Document {
	doc := Document{Version: FormatVersion, Groups: make([]GroupDoc, 0, len(groups))}
	for _, g := range groups {
		gd := GroupDoc{Name: g.Name, Commands: make([]EntryDoc, 0, len(g.Commands))}
		for _, c := range g.Commands {
			e := EntryDoc{Command: c.Command}
			if c.Priority == registry.LowestPriority {
				e.Legacy = true
			} else {
				p := c.Priority
				e.Priority = &p
			}
			gd.Commands = append(gd.Commands, e)
		}
		doc.Groups = append(doc.Groups, gd)
	}
	return doc
}

// Encode writes groups to w as YAML.
func Encode(w io.Writer, groups []registry.Group) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(groups)); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return enc.Close()
}

// Export writes groups to dstPath on fs, creating parent directories.
func Export(fs afero.Fs, dstPath string, groups []registry.Group) error {
	if err := fs.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := fs.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Encode(out, groups); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
