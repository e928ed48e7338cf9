package model

import (
	"testing"
)

func TestNoteMatches(t *testing.T) {
	note := Note{Title: "Groceries", Content: "milk eggs"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"title substring", "groc", true},
		{"title case-insensitive", "GROCERIES", true},
		{"content substring", "egg", true},
		{"content case-insensitive", "MILK", true},
		{"no match", "xyz", false},
		{"query spans fields never matches", "groceries milk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := note.Matches(tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
