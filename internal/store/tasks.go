package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hollis/jot/internal/db"
	"github.com/hollis/jot/internal/model"
)

// TaskStore owns the task collection. Like NoteStore it keeps the
// collection in memory and snapshots it on every mutation. Completed
// tasks older than the retention window are pruned opportunistically on
// every load and mutation, never by a background timer.
type TaskStore struct {
	db    *db.DB
	tasks []model.Task
	now   func() time.Time
}

// NewTaskStore creates a task store. Call Load before any mutation.
func NewTaskStore(database *db.DB) *TaskStore {
	return &TaskStore{db: database, now: time.Now}
}

// Load reads the persisted collection and prunes expired completed
// tasks. A missing or malformed snapshot yields an empty collection.
func (s *TaskStore) Load() error {
	data, err := s.db.LoadSnapshot(db.KeyTasks)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	s.tasks = decodeSnapshot[model.Task](data)
	if s.prune() {
		return s.persist()
	}
	return nil
}

// Add creates an active task and inserts it at the front of the
// collection. Tasks are never created pre-completed.
func (s *TaskStore) Add(content string) (model.Task, error) {
	task := model.Task{
		ID:        uuid.New().String(),
		Content:   content,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	s.prune()
	return task, s.persist()
}

// Toggle flips the completion state of the task with the given id.
// Completing a task stamps CompletedAt; reactivating clears it.
// Unknown ids are a silent no-op.
func (s *TaskStore) Toggle(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Completed {
			s.tasks[i].Completed = false
			s.tasks[i].CompletedAt = nil
		} else {
			now := s.now()
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &now
		}
		s.prune()
		return s.persist()
	}
	return nil
}

// Delete removes the task with the given id regardless of completion
// state. Deleting an absent id is a no-op, not an error.
func (s *TaskStore) Delete(id string) error {
	filtered := slices.DeleteFunc(s.tasks, func(t model.Task) bool {
		return t.ID == id
	})
	if len(filtered) == len(s.tasks) {
		return nil
	}
	s.tasks = filtered
	s.prune()
	return s.persist()
}

// List returns the full collection, most recently created first.
func (s *TaskStore) List() []model.Task {
	return slices.Clone(s.tasks)
}

// ListActive returns the tasks not yet completed, preserving order.
func (s *TaskStore) ListActive() []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// ListCompleted returns the completed tasks, preserving order.
func (s *TaskStore) ListCompleted() []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// prune drops tasks completed longer than the retention window ago,
// measured against the wall clock at call time. Reports whether
// anything was removed.
func (s *TaskStore) prune() bool {
	now := s.now()
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool {
		return t.Expired(now)
	})
	return len(s.tasks) != before
}

func (s *TaskStore) persist() error {
	data, err := encodeSnapshot(s.tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.db.SaveSnapshot(db.KeyTasks, data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
