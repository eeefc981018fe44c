package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

type DB struct {
	*sql.DB
	Path string
}

func New(dbPath string) (*DB, error) {
	if dbPath != MemoryPath {
		// Ensure directory exists
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, storageUnavailable("failed to create database directory", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, storageUnavailable("failed to open database", err)
	}

	// One connection shared by every store operation. An in-memory database
	// also only exists on the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storageUnavailable("failed to open database", err)
	}

	if dbPath != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, storageUnavailable("failed to enable WAL mode", err)
		}
	}

	return &DB{DB: db, Path: dbPath}, nil
}

// Open opens the database at dbPath and ensures the schema exists
func Open(dbPath string) (*DB, error) {
	db, err := New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables and indexes if they are missing. It never
// touches existing rows and is safe to run on every start.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS memo (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uid TEXT NOT NULL UNIQUE,
			created_ts BIGINT NOT NULL,
			updated_ts BIGINT NOT NULL,
			category TEXT NOT NULL DEFAULT 'daily',
			target_date TEXT,
			completion_status TEXT NOT NULL DEFAULT 'pending',
			content TEXT NOT NULL DEFAULT '',
			pinned INTEGER NOT NULL DEFAULT 0,
			archived INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS daily_plan (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			plan_date TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			category TEXT DEFAULT 'daily',
			completed INTEGER NOT NULL DEFAULT 0,
			priority INTEGER DEFAULT 0,
			created_ts BIGINT NOT NULL,
			updated_ts BIGINT NOT NULL,
			completed_ts BIGINT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_memo_category ON memo (category)`,
		`CREATE INDEX IF NOT EXISTS idx_memo_target_date ON memo (target_date)`,
		`CREATE INDEX IF NOT EXISTS idx_memo_created_ts ON memo (created_ts)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_plan_date ON daily_plan (plan_date)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return storageUnavailable("migration failed", err)
		}
	}

	return nil
}

// Close folds the WAL back into the main file and closes the handle. The
// handle is closed even when the checkpoint fails; both errors are returned.
func (db *DB) Close() error {
	var checkpointErr error
	if db.Path != MemoryPath {
		if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			checkpointErr = persistenceError("wal checkpoint", err)
		}
	}
	return errors.Join(checkpointErr, db.DB.Close())
}
