// Package registry provides command registry functionality.
package registry

import "math"

const (
	// DefaultPriority is assigned when a command is added without one.
	DefaultPriority = 1
	// LowestPriority stands in for a missing priority on legacy rows.
	LowestPriority = math.MinInt
)

// CommandEntry is a single registered shell command line and its priority.
type CommandEntry struct {
	Command  string `json:"command" yaml:"command"`
	Priority int    `json:"priority" yaml:"priority"`
}

// Group is a named, ordered list of commands.
type Group struct {
	Name     string         `json:"name" yaml:"name"`
	Commands []CommandEntry `json:"commands" yaml:"commands"`
}

// AddOptions holds the recognized options for AddCommand.
type AddOptions struct {
	Priority *int // nil selects DefaultPriority
}

// WithPriority returns AddOptions carrying p.
func WithPriority(p int) AddOptions {
	return AddOptions{Priority: &p}
}

func (o AddOptions) priority() int {
	if o.Priority == nil {
		return DefaultPriority
	}
	return *o.Priority
}

// Flatten concatenates the commands of groups in order, dropping group
// membership.
func Flatten(groups []Group) []CommandEntry {
	var out []CommandEntry
	for _, g := range groups {
		out = append(out, g.Commands...)
	}
	return out
}
