package ui

// View represents the current active view
type View int

const (
	ViewNotes View = iota
	ViewTasks
	ViewEditor
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewNotes:
		return "Notes"
	case ViewTasks:
		return "Tasks"
	case ViewEditor:
		return "Note"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}
