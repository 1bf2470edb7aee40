// Package db opens the SQLite database that backs the command registry.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/VoxDroid/cmgr/internal/config"
)

// InitDB makes sure the data directory exists and opens the database cfg
// points at (its db_path, else CMGR_DB, else <data dir>/cmgr.db).
func InitDB(cfg config.Config) (*sql.DB, error) {
	if _, err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open ensures the parent directory of dbPath exists, opens the SQLite
// database, and creates the schema if it does not exist.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// single writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := ApplyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
