package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}

func TestSnapshotMissingKey(t *testing.T) {
	database := openTestDB(t)

	data, err := database.LoadSnapshot(KeyNotes)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for missing key, got %q", data)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	database := openTestDB(t)

	payload := []byte(`[{"id":"1"}]`)
	if err := database.SaveSnapshot(KeyNotes, payload); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	data, err := database.LoadSnapshot(KeyNotes)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("got %q, want %q", data, payload)
	}
}

func TestSnapshotOverwrite(t *testing.T) {
	database := openTestDB(t)

	if err := database.SaveSnapshot(KeyTasks, []byte(`[1]`)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if err := database.SaveSnapshot(KeyTasks, []byte(`[2]`)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	data, err := database.LoadSnapshot(KeyTasks)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if string(data) != `[2]` {
		t.Errorf("got %q, want [2]", data)
	}
}

func TestSnapshotKeysIndependent(t *testing.T) {
	database := openTestDB(t)

	if err := database.SaveSnapshot(KeyNotes, []byte(`["n"]`)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if err := database.SaveSnapshot(KeyTasks, []byte(`["t"]`)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	notes, err := database.LoadSnapshot(KeyNotes)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	tasks, err := database.LoadSnapshot(KeyTasks)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if string(notes) != `["n"]` || string(tasks) != `["t"]` {
		t.Errorf("snapshots leaked across keys: notes=%q tasks=%q", notes, tasks)
	}
}
