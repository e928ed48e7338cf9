package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hollis/jot/internal/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}

func newTestNoteStore(t *testing.T) *NoteStore {
	t.Helper()

	s := NewNoteStore(openTestDB(t))
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestNoteAddOrderingAndUniqueness(t *testing.T) {
	s := newTestNoteStore(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.Add(title, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	notes := s.List()
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}

	// Most recently created first
	if notes[0].Title != "third" || notes[2].Title != "first" {
		t.Errorf("unexpected order: %q, %q, %q", notes[0].Title, notes[1].Title, notes[2].Title)
	}

	seen := make(map[string]bool)
	for _, n := range notes {
		if n.ID == "" {
			t.Error("note has empty id")
		}
		if seen[n.ID] {
			t.Errorf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestNoteAddTimestamps(t *testing.T) {
	s := newTestNoteStore(t)

	note, err := s.Add("a", "b")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Errorf("createdAt %v != updatedAt %v at creation", note.CreatedAt, note.UpdatedAt)
	}
}

func TestNoteUpdate(t *testing.T) {
	s := newTestNoteStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	note, err := s.Add("title", "content")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	s.now = func() time.Time { return base.Add(time.Minute) }

	newTitle := "renamed"
	if err := s.Update(note.ID, NoteUpdate{Title: &newTitle}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, ok := s.Get(note.ID)
	if !ok {
		t.Fatal("note disappeared after update")
	}
	if got.Title != "renamed" {
		t.Errorf("title = %q, want renamed", got.Title)
	}
	if got.Content != "content" {
		t.Errorf("content changed on partial update: %q", got.Content)
	}
	if !got.CreatedAt.Equal(note.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", note.CreatedAt, got.CreatedAt)
	}
	if !got.UpdatedAt.After(note.UpdatedAt) {
		t.Errorf("updatedAt not refreshed: %v", got.UpdatedAt)
	}
}

func TestNoteUpdateKeepsOrder(t *testing.T) {
	s := newTestNoteStore(t)

	older, _ := s.Add("older", "")
	if _, err := s.Add("newer", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	content := "edited"
	if err := s.Update(older.ID, NoteUpdate{Content: &content}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	notes := s.List()
	if notes[0].Title != "newer" || notes[1].Title != "older" {
		t.Errorf("update reordered collection: %q, %q", notes[0].Title, notes[1].Title)
	}
}

func TestNoteUpdateUnknownIDNoop(t *testing.T) {
	s := newTestNoteStore(t)

	if _, err := s.Add("only", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	title := "ghost"
	if err := s.Update("no-such-id", NoteUpdate{Title: &title}); err != nil {
		t.Errorf("Update on unknown id should be a no-op, got %v", err)
	}
	if got := s.List(); len(got) != 1 || got[0].Title != "only" {
		t.Errorf("collection changed by no-op update: %+v", got)
	}
}

func TestNoteDeleteIdempotent(t *testing.T) {
	s := newTestNoteStore(t)

	note, _ := s.Add("doomed", "")
	if _, err := s.Add("kept", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Delete(note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(note.ID); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}

	notes := s.List()
	if len(notes) != 1 || notes[0].Title != "kept" {
		t.Errorf("unexpected collection after delete: %+v", notes)
	}
	if _, ok := s.Get(note.ID); ok {
		t.Error("deleted note still retrievable")
	}
}

func TestNoteSearchScenario(t *testing.T) {
	s := newTestNoteStore(t)

	if _, err := s.Add("Groceries", "milk eggs"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("Work", "finish report"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := s.Search("egg"); len(got) != 1 || got[0].Title != "Groceries" {
		t.Errorf("Search(egg) = %+v, want only Groceries", got)
	}
	if got := s.Search(""); len(got) != 2 {
		t.Errorf("Search(\"\") returned %d notes, want 2", len(got))
	}
	if got := s.Search("xyz"); len(got) != 0 {
		t.Errorf("Search(xyz) = %+v, want none", got)
	}
}

func TestNotePersistenceRoundTrip(t *testing.T) {
	database := openTestDB(t)

	s := NewNoteStore(database)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	first, err := s.Add("first", "alpha")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := s.Add("second", "beta")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Fresh store over the same database simulates a restart
	reloaded := NewNoteStore(database)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	notes := reloaded.List()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes after reload, got %d", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Errorf("order not preserved across reload")
	}
	if notes[1].Content != "alpha" {
		t.Errorf("content lost: %q", notes[1].Content)
	}
	if !notes[1].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("createdAt not preserved: %v != %v", notes[1].CreatedAt, first.CreatedAt)
	}
}

func TestNoteLoadMalformedSnapshot(t *testing.T) {
	database := openTestDB(t)

	if err := database.SaveSnapshot(db.KeyNotes, []byte("{not json")); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	s := NewNoteStore(database)
	if err := s.Load(); err != nil {
		t.Fatalf("Load should fail soft on malformed data, got %v", err)
	}
	if got := s.List(); len(got) != 0 {
		t.Errorf("expected empty collection, got %+v", got)
	}

	// The store must accept new entries afterwards
	if _, err := s.Add("fresh start", ""); err != nil {
		t.Fatalf("Add after malformed load failed: %v", err)
	}
}
