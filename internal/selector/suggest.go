package selector

import (
	"strings"

	"github.com/VoxDroid/cmgr/internal/registry"
)

// Suggest returns the highest-priority command that loosely resembles name:
// a case-insensitive substring match in either direction, or name's
// characters appearing in order inside the command.
func Suggest(entries []registry.CommandEntry, name string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return "", false
	}
	for _, c := range ByPriority(entries) {
		t := strings.ToLower(c.Command)
		if strings.Contains(t, q) || strings.Contains(q, t) || subsequence(t, q) {
			return c.Command, true
		}
	}
	return "", false
}

// subsequence reports whether the runes of q appear in t in order.
func subsequence(t, q string) bool {
	qr := []rune(q)
	i := 0
	for _, ch := range t {
		if qr[i] == ch {
			i++
			if i >= len(qr) {
				return true
			}
		}
	}
	return false
}
