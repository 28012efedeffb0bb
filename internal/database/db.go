package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// memoryDSN is a private in-memory database; it disappears with the process
const memoryDSN = ":memory:"

// DB wraps sql.DB with the session results table. Raw ping output is not
// kept; a session can run for days.
type DB struct {
	*sql.DB
}

// New creates a new in-memory session database with its schema in place
func New() (*DB, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Every pooled connection would get its own empty in-memory database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	d := &DB{db}
	if err := d.InitSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS ping_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp INTEGER NOT NULL, -- unix nanoseconds
        target TEXT NOT NULL,
        success BOOLEAN NOT NULL,
        spawn_failed BOOLEAN NOT NULL,
        has_rtt BOOLEAN NOT NULL,
        rtt_ms INTEGER,
        error_message TEXT
    );

    CREATE INDEX IF NOT EXISTS idx_target_timestamp ON ping_results(target, timestamp);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}

// Close closes the database, discarding the session
func (db *DB) Close() error {
	return db.DB.Close()
}
