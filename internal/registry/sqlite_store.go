package registry

import (
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore is a Store backed by the groups and commands tables.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore using db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Has reports whether a group row named group exists.
func (s *SQLiteStore) Has(group string) (bool, error) {
	_, ok, err := s.groupID(s.db.QueryRow, group)
	return ok, err
}

// Get retrieves the commands of group ordered by position.
func (s *SQLiteStore) Get(group string) ([]CommandEntry, bool, error) {
	id, ok, err := s.groupID(s.db.QueryRow, group)
	if err != nil || !ok {
		return nil, ok, err
	}

	rows, err := s.db.Query("SELECT command, priority FROM commands WHERE group_id = ? ORDER BY position ASC", id)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = rows.Close() }()
	entries := []CommandEntry{}
	for rows.Next() {
		var c CommandEntry
		var pri sql.NullInt64
		if err := rows.Scan(&c.Command, &pri); err != nil {
			return nil, false, err
		}
		c.Priority = priorityFromNull(pri)
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

// Set replaces every command of group with entries inside one transaction,
// creating the group row when it does not exist yet.
func (s *SQLiteStore) Set(group string, entries []CommandEntry) error {
	trx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if _, err := trx.Exec("INSERT INTO groups (name, created_at) VALUES (?, datetime('now')) ON CONFLICT(name) DO NOTHING", group); err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	id, ok, err := s.groupID(trx.QueryRow, group)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("insert group: %q not visible after insert", group)
	}

	if _, err := trx.Exec("DELETE FROM commands WHERE group_id = ?", id); err != nil {
		return err
	}
	for i, c := range entries {
		if _, err := trx.Exec("INSERT INTO commands (group_id, position, command, priority) VALUES (?, ?, ?, ?)", id, i+1, c.Command, priorityToNull(c.Priority)); err != nil {
			return fmt.Errorf("insert command: %w", err)
		}
	}
	return trx.Commit()
}

// All returns every group with its commands, groups in creation order.
func (s *SQLiteStore) All() ([]Group, error) {
	rows, err := s.db.Query(`
		SELECT g.name, c.command, c.priority
		FROM groups g
		LEFT JOIN commands c ON c.group_id = g.id
		ORDER BY g.id ASC, c.position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []Group{}
	for rows.Next() {
		var name string
		var command sql.NullString
		var pri sql.NullInt64
		if err := rows.Scan(&name, &command, &pri); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, Group{Name: name, Commands: []CommandEntry{}})
		}
		if !command.Valid {
			continue
		}
		g := &out[len(out)-1]
		g.Commands = append(g.Commands, CommandEntry{Command: command.String, Priority: priorityFromNull(pri)})
	}
	return out, rows.Err()
}

// Close closes the underlying DB connection used by the store.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) groupID(queryRow func(string, ...any) *sql.Row, group string) (int64, bool, error) {
	var id int64
	if err := queryRow("SELECT id FROM groups WHERE name = ?", group).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func priorityFromNull(p sql.NullInt64) int {
	if !p.Valid {
		return LowestPriority
	}
	return int(p.Int64)
}

func priorityToNull(p int) sql.NullInt64 {
	if p == LowestPriority {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(p), Valid: true}
}
