package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollis/jot/internal/model"
	"github.com/hollis/jot/internal/store"
	"github.com/hollis/jot/internal/ui/theme"
)

// NotesMode represents the current input mode of the notes view
type NotesMode int

const (
	NotesModeNormal NotesMode = iota
	NotesModeAdd
	NotesModeSearch
	NotesModeConfirmDelete
)

// OpenNoteRequest is sent when the user opens a note in the editor
// (defined here to avoid a circular import with the ui package)
type OpenNoteRequest struct {
	NoteID string
}

// NotesView displays the note list with live search
type NotesView struct {
	notes  *store.NoteStore
	width  int
	height int

	visible      []model.Note // notes matching the search filter
	cursor       int
	scrollOffset int

	mode         NotesMode
	input        textinput.Model
	searchFilter string
	deleteID     string
	statusMsg    string
}

// NewNotesView creates a new notes view
func NewNotesView(notes *store.NoteStore) NotesView {
	ti := textinput.New()
	ti.Placeholder = "Note title..."
	ti.CharLimit = 256

	v := NotesView{
		notes: notes,
		input: ti,
	}
	v.refresh()
	return v
}

// Init initializes the notes view
func (v NotesView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input
func (v NotesView) IsInputMode() bool {
	return v.mode != NotesModeNormal
}

// SetSize updates the view dimensions
func (v NotesView) SetSize(width, height int) NotesView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// Refresh re-reads the collection and reapplies the search filter
func (v NotesView) Refresh() NotesView {
	v.refresh()
	return v
}

func (v *NotesView) refresh() {
	v.visible = v.notes.Search(v.searchFilter)
	if v.cursor >= len(v.visible) {
		v.cursor = max(0, len(v.visible)-1)
	}
}

func (v *NotesView) visibleCount() int {
	// Two lines per note row plus the header area
	available := (v.height - 4) / 2
	if available < 1 {
		available = 1
	}
	return available
}

func (v *NotesView) ensureCursorVisible() {
	visible := v.visibleCount()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Update handles messages for the notes view
func (v NotesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case NotesModeAdd:
			return v.handleAddMode(msg)
		case NotesModeSearch:
			return v.handleSearchMode(msg)
		case NotesModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}
	return v, nil
}

func (v NotesView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		v.ensureCursorVisible()
	case "down", "j":
		if v.cursor < len(v.visible)-1 {
			v.cursor++
		}
		v.ensureCursorVisible()
	case "g":
		v.cursor = 0
		v.ensureCursorVisible()
	case "G":
		v.cursor = max(0, len(v.visible)-1)
		v.ensureCursorVisible()

	case "a":
		v.mode = NotesModeAdd
		v.input.Placeholder = "Note title..."
		v.input.SetValue("")
		v.input.Focus()

	case "/":
		v.mode = NotesModeSearch
		v.input.Placeholder = "Search notes..."
		v.input.SetValue(v.searchFilter)
		v.input.Focus()

	case "esc":
		if v.searchFilter != "" {
			v.searchFilter = ""
			v.refresh()
		}

	case "d":
		if v.cursor < len(v.visible) {
			v.deleteID = v.visible[v.cursor].ID
			v.mode = NotesModeConfirmDelete
		}

	case "enter":
		if v.cursor < len(v.visible) {
			id := v.visible[v.cursor].ID
			return v, func() tea.Msg {
				return OpenNoteRequest{NoteID: id}
			}
		}
	}

	return v, nil
}

func (v NotesView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(v.input.Value())
		v.mode = NotesModeNormal
		v.input.Blur()
		if title == "" {
			return v, nil
		}
		note, err := v.notes.Add(title, "")
		if err != nil {
			v.statusMsg = fmt.Sprintf("Error: %v", err)
			return v, nil
		}
		v.refresh()
		v.statusMsg = "Note added"
		return v, func() tea.Msg {
			return OpenNoteRequest{NoteID: note.ID}
		}

	case "esc":
		v.mode = NotesModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v NotesView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.mode = NotesModeNormal
		v.input.Blur()
		return v, nil

	case "esc":
		v.mode = NotesModeNormal
		v.input.Blur()
		v.searchFilter = ""
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	// Live filter as the user types
	v.searchFilter = v.input.Value()
	v.refresh()
	return v, cmd
}

func (v NotesView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := v.notes.Delete(v.deleteID); err != nil {
			v.statusMsg = fmt.Sprintf("Error: %v", err)
		} else {
			v.statusMsg = "Note deleted"
		}
		v.deleteID = ""
		v.mode = NotesModeNormal
		v.refresh()
	case "n", "esc":
		v.deleteID = ""
		v.mode = NotesModeNormal
	}
	return v, nil
}

// View renders the notes view
func (v NotesView) View() string {
	styles := theme.CurrentStyles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("My Notes"))
	b.WriteString("\n")

	switch v.mode {
	case NotesModeAdd:
		b.WriteString(styles.Input.Render(v.input.View()))
		b.WriteString("\n")
	case NotesModeSearch:
		b.WriteString(styles.Input.Render(v.input.View()))
		b.WriteString("\n")
	case NotesModeConfirmDelete:
		b.WriteString(styles.Error.Render("Delete this note? (y/n)"))
		b.WriteString("\n")
	default:
		if v.searchFilter != "" {
			b.WriteString(styles.Subtitle.Render(fmt.Sprintf("filter: %q (%d match)", v.searchFilter, len(v.visible))))
			b.WriteString("\n")
		}
	}

	if len(v.visible) == 0 {
		if v.searchFilter != "" {
			b.WriteString(styles.Subtitle.Render("No notes found."))
		} else {
			b.WriteString(styles.Subtitle.Render("No notes yet. Press 'a' to create one."))
		}
		return b.String()
	}

	count := v.visibleCount()
	end := min(v.scrollOffset+count, len(v.visible))

	for i := v.scrollOffset; i < end; i++ {
		n := v.visible[i]

		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		meta := styles.Meta.Render("  " + FormatDate(n.UpdatedAt) + " · " + excerpt(n.Content, 48))

		if i == v.cursor {
			b.WriteString(styles.ItemSelected.Render("› " + title))
		} else {
			b.WriteString(styles.ItemNormal.Render("  " + title))
		}
		b.WriteString("\n")
		b.WriteString(meta)
		b.WriteString("\n")
	}

	if v.statusMsg != "" {
		b.WriteString(styles.Status.Render(v.statusMsg))
	}

	return b.String()
}

// excerpt returns the first line of content trimmed to n runes
func excerpt(content string, n int) string {
	line, _, _ := strings.Cut(content, "\n")
	runes := []rune(line)
	if len(runes) <= n {
		return line
	}
	return string(runes[:n]) + "…"
}
