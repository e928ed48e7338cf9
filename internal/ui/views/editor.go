package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollis/jot/internal/store"
	"github.com/hollis/jot/internal/ui/theme"
)

// EditorClosedRequest is sent when the editor is dismissed
type EditorClosedRequest struct{}

// editorFocus tracks which input owns the keyboard
type editorFocus int

const (
	focusTitle editorFocus = iota
	focusContent
)

// EditorView edits a single note's title and content
type EditorView struct {
	notes  *store.NoteStore
	width  int
	height int

	noteID  string
	title   textinput.Model
	content textarea.Model
	focus   editorFocus

	confirmDelete bool
	dirty         bool
	statusMsg     string
}

// NewEditorView creates a new editor view
func NewEditorView(notes *store.NoteStore) EditorView {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.CharLimit = 0

	return EditorView{
		notes:   notes,
		title:   ti,
		content: ta,
	}
}

// SetNote points the editor at a note and loads its current fields
func (v EditorView) SetNote(id string) EditorView {
	v.noteID = id
	v.confirmDelete = false
	v.dirty = false
	v.statusMsg = ""
	v.focus = focusContent

	if note, ok := v.notes.Get(id); ok {
		v.title.SetValue(note.Title)
		v.content.SetValue(note.Content)
	} else {
		v.title.SetValue("")
		v.content.SetValue("")
	}

	v.title.Blur()
	v.content.Focus()
	return v
}

// Init initializes the editor view
func (v EditorView) Init() tea.Cmd {
	return textarea.Blink
}

// IsInputMode returns true; the editor always captures text input
func (v EditorView) IsInputMode() bool {
	return true
}

// SetSize updates the view dimensions
func (v EditorView) SetSize(width, height int) EditorView {
	v.width = width
	v.height = height
	v.title.Width = width - 6
	v.content.SetWidth(width - 4)
	v.content.SetHeight(max(3, height-8))
	return v
}

// Update handles messages for the editor view
func (v EditorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.updateInputs(msg)
	}

	if v.confirmDelete {
		switch keyMsg.String() {
		case "y", "enter":
			if err := v.notes.Delete(v.noteID); err != nil {
				v.statusMsg = fmt.Sprintf("Error: %v", err)
				v.confirmDelete = false
				return v, nil
			}
			v.confirmDelete = false
			return v, func() tea.Msg { return EditorClosedRequest{} }
		case "n", "esc":
			v.confirmDelete = false
		}
		return v, nil
	}

	switch keyMsg.String() {
	case "ctrl+s":
		v.save()
		return v, nil

	case "ctrl+y":
		if err := clipboard.WriteAll(v.content.Value()); err != nil {
			v.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		} else {
			v.statusMsg = "Content copied to clipboard"
		}
		return v, nil

	case "ctrl+d":
		v.confirmDelete = true
		return v, nil

	case "tab":
		if v.focus == focusTitle {
			v.focus = focusContent
			v.title.Blur()
			return v, v.content.Focus()
		}
		v.focus = focusTitle
		v.content.Blur()
		return v, v.title.Focus()

	case "esc":
		if v.dirty {
			v.save()
		}
		return v, func() tea.Msg { return EditorClosedRequest{} }
	}

	v.dirty = true
	v.statusMsg = ""
	return v.updateInputs(msg)
}

func (v EditorView) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if v.focus == focusTitle {
		v.title, cmd = v.title.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		v.content, cmd = v.content.Update(msg)
		cmds = append(cmds, cmd)
	}

	return v, tea.Batch(cmds...)
}

func (v *EditorView) save() {
	title := v.title.Value()
	content := v.content.Value()
	err := v.notes.Update(v.noteID, store.NoteUpdate{
		Title:   &title,
		Content: &content,
	})
	if err != nil {
		v.statusMsg = fmt.Sprintf("Error: %v", err)
		return
	}
	v.dirty = false
	v.statusMsg = "Note saved"
}

// View renders the editor view
func (v EditorView) View() string {
	styles := theme.CurrentStyles()
	var b strings.Builder

	b.WriteString(styles.Input.Render(v.title.View()))
	b.WriteString("\n")

	if note, ok := v.notes.Get(v.noteID); ok {
		b.WriteString(styles.Meta.Render("edited " + FormatDateTime(note.UpdatedAt)))
		b.WriteString("\n")
	}

	b.WriteString(v.content.View())
	b.WriteString("\n")

	if v.confirmDelete {
		b.WriteString(styles.Error.Render("Delete this note? (y/n)"))
	} else if v.statusMsg != "" {
		b.WriteString(styles.Status.Render(v.statusMsg))
	}

	return b.String()
}
