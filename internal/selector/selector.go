// Package selector resolves a command request against an in-memory
// candidate set: by exact name, by glob pattern(s) or by top priority.
// Nothing here touches the store.
package selector

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/VoxDroid/cmgr/internal/registry"
)

// ErrBadPattern is wrapped by FindByPatterns when a pattern cannot be parsed.
var ErrBadPattern = errors.New("invalid pattern")

// ByPriority returns a copy of entries sorted by descending priority.
// Entries with equal priority keep their input order.
func ByPriority(entries []registry.CommandEntry) []registry.CommandEntry {
	out := append([]registry.CommandEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// First returns the highest-priority entry.
func First(entries []registry.CommandEntry) (registry.CommandEntry, bool) {
	if len(entries) == 0 {
		return registry.CommandEntry{}, false
	}
	return ByPriority(entries)[0], true
}

// FindByName returns the highest-priority entry whose command equals name.
func FindByName(entries []registry.CommandEntry, name string) (registry.CommandEntry, bool) {
	for _, c := range ByPriority(entries) {
		if c.Command == name {
			return c, true
		}
	}
	return registry.CommandEntry{}, false
}

// FindByPatterns returns the highest-priority entry whose command matches
// every pattern. Patterns use shell-style globbing (*, ?, [...], {a,b}, **)
// and are case-sensitive; a leading '!' negates a pattern. An empty pattern
// list matches nothing.
func FindByPatterns(entries []registry.CommandEntry, patterns []string) (registry.CommandEntry, bool, error) {
	if len(patterns) == 0 {
		return registry.CommandEntry{}, false, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(strings.TrimPrefix(p, "!")) {
			return registry.CommandEntry{}, false, fmt.Errorf("%w: %q", ErrBadPattern, p)
		}
	}
	for _, c := range ByPriority(entries) {
		if matchesAll(c.Command, patterns) {
			return c, true, nil
		}
	}
	return registry.CommandEntry{}, false, nil
}

func matchesAll(command string, patterns []string) bool {
	for _, p := range patterns {
		if !match(command, p) {
			return false
		}
	}
	return true
}

func match(command, pattern string) bool {
	if rest, negated := strings.CutPrefix(pattern, "!"); negated && rest != "" {
		return !doublestar.MatchUnvalidated(rest, command)
	}
	return doublestar.MatchUnvalidated(pattern, command)
}
