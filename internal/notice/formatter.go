package notice

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type badge struct {
	symbol string
	style  lipgloss.Style
}

// Formatter renders entries as "<badge> <message> key=value...".
type Formatter struct {
	Color  bool
	badges map[string]badge
}

// NewFormatter returns a Formatter whose styles target out.
func NewFormatter(out io.Writer, color bool) *Formatter {
	r := lipgloss.NewRenderer(out)
	return &Formatter{
		Color: color,
		badges: map[string]badge{
			"debug":     {"…", r.NewStyle().Foreground(lipgloss.Color("8"))},
			"info":      {"ℹ", r.NewStyle().Foreground(lipgloss.Color("14"))},
			"warning":   {"⚠", r.NewStyle().Foreground(lipgloss.Color("11"))},
			"error":     {"✖", r.NewStyle().Foreground(lipgloss.Color("9"))},
			KindSuccess: {"✔", r.NewStyle().Foreground(lipgloss.Color("10"))},
		},
	}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	kind := e.Level.String()
	if k, ok := e.Data[FieldKind].(string); ok {
		kind = k
	}
	if e.Level <= logrus.ErrorLevel {
		kind = "error"
	}
	b, ok := f.badges[kind]
	if !ok {
		b = f.badges["info"]
	}

	var buf bytes.Buffer
	if f.Color {
		buf.WriteString(b.style.Bold(true).Render(b.symbol))
	} else {
		buf.WriteString(b.symbol)
	}
	buf.WriteByte(' ')
	buf.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k == FieldKind {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, e.Data[k])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
