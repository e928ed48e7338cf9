package db

import (
	"database/sql"
	"time"
)

// Snapshot keys, one per collection. Never mixed.
const (
	KeyNotes = "notes"
	KeyTasks = "tasks"
)

// LoadSnapshot returns the serialized collection stored under key, or
// nil if nothing has been stored yet.
func (db *DB) LoadSnapshot(key string) ([]byte, error) {
	var data string
	err := db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// SaveSnapshot overwrites the collection stored under key. The write
// replaces the prior snapshot in a single statement, so callers never
// observe a partial state.
func (db *DB) SaveSnapshot(key string, data []byte) error {
	_, err := db.Exec(`
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data), time.Now())
	return err
}
