package db

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Open opens (and creates, if needed) the SQLite database at path and makes
// sure the schema exists. The busy timeout keeps concurrent writers queued
// instead of failing with SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	sqldb.SetMaxOpenConns(10)
	sqldb.SetMaxIdleConns(5)

	if err := createTables(sqldb); err != nil {
		return nil, err
	}

	log.WithField("path", path).Info("database ready")
	return sqldb, nil
}

func createTables(sqldb *sql.DB) error {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role_name TEXT NOT NULL,
		email_notifications INTEGER NOT NULL DEFAULT 1
	);`
	if _, err := sqldb.Exec(createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	createEventsTable := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		date_time TEXT NOT NULL,
		venue TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		organizer_id INTEGER NOT NULL REFERENCES users(id),
		price REAL
	);`
	if _, err := sqldb.Exec(createEventsTable); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}

	// UNIQUE(event_id, user_id) guarantees at most one row per pair; status
	// is toggled in place, never re-inserted.
	createRegistrationsTable := `
	CREATE TABLE IF NOT EXISTS registrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id INTEGER NOT NULL REFERENCES events(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		status TEXT NOT NULL,
		UNIQUE(event_id, user_id)
	);`
	if _, err := sqldb.Exec(createRegistrationsTable); err != nil {
		return fmt.Errorf("create registrations table: %w", err)
	}

	createReportsTable := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id INTEGER NOT NULL REFERENCES events(id),
		attendee_id INTEGER NOT NULL REFERENCES users(id),
		UNIQUE(event_id, attendee_id)
	);`
	if _, err := sqldb.Exec(createReportsTable); err != nil {
		return fmt.Errorf("create reports table: %w", err)
	}

	return nil
}
