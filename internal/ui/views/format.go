package views

import "time"

// FormatDate renders a timestamp as a short date, e.g. "Mar 5, 2026"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a timestamp with time of day,
// e.g. "Mar 5, 2026, 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}
