package app

import (
	"path/filepath"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	dir := t.TempDir()
	return &Config{
		DataDir: dir,
		DBPath:  filepath.Join(dir, "jot.db"),
	}
}

func TestNewLoadsStores(t *testing.T) {
	application, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer application.Close()

	// Stores are loaded and usable without any further setup
	if _, err := application.Notes.Add("hello", "world"); err != nil {
		t.Fatalf("Notes.Add failed: %v", err)
	}
	if _, err := application.Tasks.Add("do things"); err != nil {
		t.Fatalf("Tasks.Add failed: %v", err)
	}
}

func TestSingleInstanceLock(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer first.Close()

	if _, err := New(cfg); err == nil {
		t.Error("expected second instance to fail while lock is held")
	}
}

func TestReopenAfterClose(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := first.Notes.Add("persisted", ""); err != nil {
		t.Fatalf("Notes.Add failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := New(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	notes := second.Notes.List()
	if len(notes) != 1 || notes[0].Title != "persisted" {
		t.Errorf("note not persisted across restart: %+v", notes)
	}
}
