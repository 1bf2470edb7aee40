package executor

import (
	"context"
	"errors"

	"github.com/VoxDroid/cmgr/internal/registry"
)

// ErrMutuallyExclusive is returned when a request names a command and
// patterns at the same time.
var ErrMutuallyExclusive = errors.New("cmd and pattern options are mutually exclusive; provide either cmd or pattern (or none)")

// Request describes one execution: at most one of Name or Patterns, an
// optional Group (empty means every group) and extra Args for the command.
type Request struct {
	Group    string
	Name     string
	Patterns []string
	Args     []string
}

// Validate checks the request without touching any store.
func (r Request) Validate() error {
	if r.Name != "" && len(r.Patterns) > 0 {
		return ErrMutuallyExclusive
	}
	return nil
}

// Loader returns the candidate strategy implied by Group.
func (r Request) Loader() Loader {
	if r.Group != "" {
		return Grouped(r.Group)
	}
	return Ungrouped()
}

// Dispatch validates req, builds an Executor over st and runs the selection
// the request asks for: by name, by patterns, or the top priority.
func Dispatch(ctx context.Context, st registry.Store, req Request, opts ...Option) error {
	if err := req.Validate(); err != nil {
		return err
	}
	e, err := New(st, req.Loader(), opts...)
	if err != nil {
		return err
	}
	switch {
	case req.Name != "":
		return e.Run(ctx, req.Name, req.Args...)
	case len(req.Patterns) > 0:
		return e.RunByPattern(ctx, req.Patterns, req.Args...)
	default:
		return e.RunFirst(ctx, req.Args...)
	}
}
