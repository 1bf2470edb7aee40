// Package executor selects a registered command and runs it.
//
// An Executor is built from a Loader that decides its candidate set: one
// group (Grouped) or every group flattened together (Ungrouped). The set is
// loaded once at construction and never re-read.
package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
	"github.com/VoxDroid/cmgr/internal/selector"
)

// Loader builds the candidate set of an Executor.
type Loader interface {
	Load(st registry.Store) ([]registry.CommandEntry, error)
	// Group names the scope for notices; empty for the whole registry.
	Group() string
}

type groupLoader struct{ group string }

// Grouped loads the commands of one group. Loading fails with
// *registry.GroupNotFoundError when the group is absent.
func Grouped(group string) Loader { return groupLoader{group: group} }

func (l groupLoader) Load(st registry.Store) ([]registry.CommandEntry, error) {
	ok, err := st.Has(l.group)
	if err != nil {
		return nil, fmt.Errorf("check group %q: %w", l.group, err)
	}
	if !ok {
		return nil, &registry.GroupNotFoundError{Group: l.group}
	}
	entries, _, err := st.Get(l.group)
	if err != nil {
		return nil, fmt.Errorf("read group %q: %w", l.group, err)
	}
	return entries, nil
}

func (l groupLoader) Group() string { return l.group }

type ungroupedLoader struct{}

// Ungrouped loads every group and flattens them into one candidate set.
func Ungrouped() Loader { return ungroupedLoader{} }

func (ungroupedLoader) Load(st registry.Store) ([]registry.CommandEntry, error) {
	groups, err := st.All()
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return registry.Flatten(groups), nil
}

func (ungroupedLoader) Group() string { return "" }

// Option configures an Executor.
type Option func(*Executor)

// WithRunner replaces the default ShellRunner.
func WithRunner(r Runner) Option {
	return func(e *Executor) { e.runner = r }
}

// WithLogger sets where notices go.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Executor) { e.log = notice.OrDiscard(log) }
}

// WithStdio sets the streams handed to the child (default: the process's own).
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
	}
}

// Executor runs commands picked from a fixed candidate set.
type Executor struct {
	group      string
	candidates []registry.CommandEntry

	runner Runner
	log    logrus.FieldLogger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New loads the candidate set through l and returns an Executor over it.
func New(st registry.Store, l Loader, opts ...Option) (*Executor, error) {
	candidates, err := l.Load(st)
	if err != nil {
		return nil, err
	}
	e := &Executor{
		group:      l.Group(),
		candidates: candidates,
		runner:     &ShellRunner{},
		log:        notice.Discard(),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Candidates returns a copy of the snapshot taken at construction.
func (e *Executor) Candidates() []registry.CommandEntry {
	return append([]registry.CommandEntry(nil), e.candidates...)
}

// Run executes the command whose text equals name. A missing command is
// reported as a warning, not an error.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	c, ok := selector.FindByName(e.candidates, name)
	if !ok {
		msg := fmt.Sprintf("Specified command %q was not found in registered commands", name)
		if e.group != "" {
			msg = fmt.Sprintf("Specified command %q was not found in the %q group", name, e.group)
		}
		if s, ok := selector.Suggest(e.candidates, name); ok {
			msg += fmt.Sprintf("; did you mean %q?", s)
		} else {
			msg += "."
		}
		e.log.Warn(msg)
		return nil
	}
	return e.exec(ctx, c, args)
}

// RunFirst executes the highest-priority command.
func (e *Executor) RunFirst(ctx context.Context, args ...string) error {
	c, ok := selector.First(e.candidates)
	if !ok {
		if e.group != "" {
			e.log.Infof("There are no registered commands in the %q group.", e.group)
		} else {
			e.log.Info("There are no commands in the registry yet.")
		}
		return nil
	}
	return e.exec(ctx, c, args)
}

// RunByPattern executes the highest-priority command matching every pattern.
func (e *Executor) RunByPattern(ctx context.Context, patterns []string, args ...string) error {
	c, ok, err := selector.FindByPatterns(e.candidates, patterns)
	if err != nil {
		return err
	}
	if !ok {
		if e.group != "" {
			e.log.Infof("There are no registered commands matching %s in the %q group.", quoteAll(patterns), e.group)
		} else {
			e.log.Infof("There are no registered commands matching %s.", quoteAll(patterns))
		}
		return nil
	}
	return e.exec(ctx, c, args)
}

func (e *Executor) exec(ctx context.Context, c registry.CommandEntry, args []string) error {
	e.log.Infof("Going to execute: %s", strings.Join(append([]string{c.Command}, args...), " "))
	return e.runner.Execute(ctx, c.Command, args, e.stdin, e.stdout, e.stderr)
}

func quoteAll(patterns []string) string {
	q := make([]string, len(patterns))
	for i, p := range patterns {
		q[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(q, ", ")
}
