// Package nameutil validates group names and command text before they are
// written to the registry.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateGroupName checks whether name is acceptable as a group key.
// It rejects empty names, non-UTF8 bytes and control characters. It does NOT
// mutate the input; run it through Clean first to drop pasted artifacts.
func ValidateGroupName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid group name: name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid group name: contains invalid encoding")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid group name: contains control character U+%04X (%q)", r, r)
		}
	}
	return nil
}

// ValidateCommand checks that command is a non-empty, valid UTF-8 line.
// The command text itself is stored verbatim.
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("invalid command: command cannot be empty")
	}
	if !utf8.ValidString(command) {
		return fmt.Errorf("invalid command: contains invalid encoding")
	}
	return nil
}

// invisible lists zero-width runes that ride along when text is pasted from
// chat clients and web pages.
var invisible = map[rune]bool{'\u200B': true, '\u200C': true, '\u200D': true, '\u2060': true, '\uFEFF': true}

// Clean drops control characters (tabs excepted) and zero-width runes from s
// and trims surrounding whitespace. It reports whether the result differs.
func Clean(s string) (string, bool) {
	out := strings.TrimSpace(strings.Map(func(r rune) rune {
		if invisible[r] || (r != '\t' && unicode.IsControl(r)) {
			return -1
		}
		return r
	}, s))
	return out, out != s
}
