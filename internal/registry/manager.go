package registry

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VoxDroid/cmgr/internal/nameutil"
	"github.com/VoxDroid/cmgr/internal/notice"
)

// Manager adds, removes and inspects commands in the groups of a Store.
// It borrows the store; closing it is the caller's job.
type Manager struct {
	store Store
	log   logrus.FieldLogger
}

// NewManager returns a Manager over store. A nil log discards notices.
func NewManager(store Store, log logrus.FieldLogger) *Manager {
	return &Manager{store: store, log: notice.OrDiscard(log)}
}

// AddCommand appends command to group with the priority from opts, creating
// the group when it does not exist yet.
func (m *Manager) AddCommand(command, group string, opts AddOptions) error {
	if err := nameutil.ValidateGroupName(group); err != nil {
		return err
	}
	if err := nameutil.ValidateCommand(command); err != nil {
		return err
	}
	items, _, err := m.store.Get(group)
	if err != nil {
		return fmt.Errorf("read group %q: %w", group, err)
	}
	items = append(items, CommandEntry{Command: command, Priority: opts.priority()})
	if err := m.store.Set(group, items); err != nil {
		return fmt.Errorf("write group %q: %w", group, err)
	}
	return nil
}

// RemoveCommand deletes every entry of group whose text equals command and
// returns how many were removed. When none match nothing is written and a
// notice is logged instead of an error.
func (m *Manager) RemoveCommand(command, group string) (int, error) {
	items, err := m.View(group)
	if err != nil {
		return 0, err
	}
	kept := make([]CommandEntry, 0, len(items))
	for _, c := range items {
		if c.Command != command {
			kept = append(kept, c)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		m.log.Infof("Command %q was not found in the registry.", command)
		return 0, nil
	}
	if err := m.store.Set(group, kept); err != nil {
		return 0, fmt.Errorf("write group %q: %w", group, err)
	}
	return removed, nil
}

// View returns the commands of group exactly as stored.
func (m *Manager) View(group string) ([]CommandEntry, error) {
	items, ok, err := m.store.Get(group)
	if err != nil {
		return nil, fmt.Errorf("read group %q: %w", group, err)
	}
	if !ok {
		return nil, &GroupNotFoundError{Group: group}
	}
	return items, nil
}

// ViewAll returns the whole registry as stored.
func (m *Manager) ViewAll() ([]Group, error) {
	groups, err := m.store.All()
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return groups, nil
}

// ReplaceGroup overwrites group with entries, creating it when absent.
func (m *Manager) ReplaceGroup(group string, entries []CommandEntry) error {
	if err := nameutil.ValidateGroupName(group); err != nil {
		return err
	}
	if err := m.store.Set(group, entries); err != nil {
		return fmt.Errorf("write group %q: %w", group, err)
	}
	return nil
}

// MergeGroup appends entries to group in one write, creating it when absent.
func (m *Manager) MergeGroup(group string, entries []CommandEntry) error {
	if err := nameutil.ValidateGroupName(group); err != nil {
		return err
	}
	items, _, err := m.store.Get(group)
	if err != nil {
		return fmt.Errorf("read group %q: %w", group, err)
	}
	return m.ReplaceGroup(group, append(items, entries...))
}
