// Package notice reports informational outcomes to the user. It is a thin
// layer over logrus with a compact, badge-prefixed console format.
package notice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// FieldKind tags an entry with a presentation kind beyond its level.
const FieldKind = "notice"

// KindSuccess renders an info entry with the success badge.
const KindSuccess = "success"

// New builds a logger writing to out at the given level ("debug", "info",
// "warn", "error"). Colors are used only when out is a terminal and noColor
// is false.
func New(out io.Writer, level string, noColor bool) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if strings.TrimSpace(level) != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(NewFormatter(out, !noColor && colorable(out)))
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(NewFormatter(io.Discard, false))
	return log
}

// Success logs msg at info level with the success badge.
func Success(log logrus.FieldLogger, format string, args ...any) {
	log.WithField(FieldKind, KindSuccess).Infof(format, args...)
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return Discard()
	}
	return log
}

func colorable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
