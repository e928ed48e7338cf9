package model

import (
	"testing"
	"time"
)

func TestTaskExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	completedAt := func(age time.Duration) *time.Time {
		ts := now.Add(-age)
		return &ts
	}

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"active task never expires", Task{Completed: false}, false},
		{"just completed", Task{Completed: true, CompletedAt: completedAt(0)}, false},
		{"29 days old", Task{Completed: true, CompletedAt: completedAt(29 * 24 * time.Hour)}, false},
		{"exactly 30 days old is retained", Task{Completed: true, CompletedAt: completedAt(RetentionWindow)}, false},
		{"30 days and a second", Task{Completed: true, CompletedAt: completedAt(RetentionWindow + time.Second)}, true},
		{"45 days old", Task{Completed: true, CompletedAt: completedAt(45 * 24 * time.Hour)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
