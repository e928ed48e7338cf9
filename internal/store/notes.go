package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hollis/jot/internal/db"
	"github.com/hollis/jot/internal/model"
)

// NoteStore owns the note collection. It holds the collection in memory
// and writes the full snapshot through the database on every mutation.
// Operations are synchronous; the store is not safe for concurrent use.
type NoteStore struct {
	db    *db.DB
	notes []model.Note
	now   func() time.Time
}

// NoteUpdate carries a partial update; nil fields are left unchanged.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// NewNoteStore creates a note store. Call Load before any mutation.
func NewNoteStore(database *db.DB) *NoteStore {
	return &NoteStore{db: database, now: time.Now}
}

// Load reads the persisted collection. A missing or malformed snapshot
// yields an empty collection; only the read itself can fail.
func (s *NoteStore) Load() error {
	data, err := s.db.LoadSnapshot(db.KeyNotes)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	s.notes = decodeSnapshot[model.Note](data)
	return nil
}

// Add creates a note and inserts it at the front of the collection.
// Both timestamps are set from the same instant.
func (s *NoteStore) Add(title, content string) (model.Note, error) {
	now := s.now()
	note := model.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]model.Note{note}, s.notes...)
	return note, s.persist()
}

// Update merges the supplied fields over the note with the given id and
// refreshes its UpdatedAt. Unknown ids are a silent no-op. The
// collection order is not changed.
func (s *NoteStore) Update(id string, upd NoteUpdate) error {
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.notes[i].Title = *upd.Title
		}
		if upd.Content != nil {
			s.notes[i].Content = *upd.Content
		}
		s.notes[i].UpdatedAt = s.now()
		return s.persist()
	}
	return nil
}

// Delete removes the note with the given id. Deleting an absent id is
// a no-op, not an error.
func (s *NoteStore) Delete(id string) error {
	filtered := slices.DeleteFunc(s.notes, func(n model.Note) bool {
		return n.ID == id
	})
	if len(filtered) == len(s.notes) {
		return nil
	}
	s.notes = filtered
	return s.persist()
}

// Get returns the note with the given id, if present. No side effects.
func (s *NoteStore) Get(id string) (model.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

// List returns the collection, most recently created first.
func (s *NoteStore) List() []model.Note {
	return slices.Clone(s.notes)
}

// Search returns the notes matching the query, preserving order.
func (s *NoteStore) Search(query string) []model.Note {
	var out []model.Note
	for _, n := range s.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

func (s *NoteStore) persist() error {
	data, err := encodeSnapshot(s.notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.db.SaveSnapshot(db.KeyNotes, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
