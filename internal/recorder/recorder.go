// Package recorder reads commands typed or piped one per line and registers
// them in a group.
package recorder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/VoxDroid/cmgr/internal/registry"
)

// maxLineBytes bounds a single recorded line.
const maxLineBytes = 1 << 20

// sentinels end a recording when they are the only text on a line.
var sentinels = map[string]bool{":end": true, ":save": true, ":quit": true}

// RecordCommands reads lines from r until EOF and returns non-empty, non-comment lines
// as a slice of commands. Lines starting with '#' are treated as comments and ignored.
// Ctrl-Z (raw or typed as ^Z) and the :end/:save/:quit sentinels stop reading early.
func RecordCommands(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []string
	for s.Scan() {
		line, stop := cutEOF(s.Text())
		line = strings.TrimSpace(line)
		if sentinels[line] {
			break
		}
		if line != "" && !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
		if stop {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return out, nil
}

// cutEOF truncates line at a Windows EOF marker and reports whether one was found.
func cutEOF(line string) (string, bool) {
	for _, marker := range []string{"\x1A", "^Z"} {
		if i := strings.Index(line, marker); i >= 0 {
			return line[:i], true
		}
	}
	return line, false
}

// SaveRecorded appends commands to group in order, all with the priority from
// opts. It returns how many were written.
func SaveRecorded(m *registry.Manager, group string, opts registry.AddOptions, commands []string) (int, error) {
	for i, c := range commands {
		if err := m.AddCommand(c, group, opts); err != nil {
			return i, err
		}
	}
	return len(commands), nil
}
