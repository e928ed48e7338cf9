package model

import (
	"time"
)

// RetentionWindow is how long a completed task is kept before the
// stores prune it automatically.
const RetentionWindow = 30 * 24 * time.Hour

// Task is a short-lived to-do item
type Task struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"` // nil serializes as explicit null
}

// Expired reports whether the task has fallen out of the retention
// window as of now. A task completed exactly RetentionWindow ago is
// still retained; only strictly older ones expire.
func (t *Task) Expired(now time.Time) bool {
	if !t.Completed || t.CompletedAt == nil {
		return false
	}
	return t.CompletedAt.Before(now.Add(-RetentionWindow))
}
