package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hollis/jot/internal/model"
	"github.com/hollis/jot/internal/store"
	"github.com/hollis/jot/internal/ui/theme"
)

// TasksMode represents the current input mode of the tasks view
type TasksMode int

const (
	TasksModeNormal TasksMode = iota
	TasksModeAdd
	TasksModeConfirmDelete
)

// TaskTab selects which partition of the collection is shown
type TaskTab int

const (
	TabActive TaskTab = iota
	TabCompleted
)

func (t TaskTab) String() string {
	switch t {
	case TabActive:
		return "Active"
	case TabCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// TasksView displays tasks partitioned into active/completed tabs
type TasksView struct {
	tasks  *store.TaskStore
	width  int
	height int

	tab          TaskTab
	visible      []model.Task // tasks in the current tab
	cursor       int
	scrollOffset int

	mode      TasksMode
	input     textinput.Model
	deleteID  string
	statusMsg string
}

// NewTasksView creates a new tasks view
func NewTasksView(tasks *store.TaskStore) TasksView {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 256

	v := TasksView{
		tasks: tasks,
		input: ti,
	}
	v.refresh()
	return v
}

// Init initializes the tasks view
func (v TasksView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input
func (v TasksView) IsInputMode() bool {
	return v.mode != TasksModeNormal
}

// SetSize updates the view dimensions
func (v TasksView) SetSize(width, height int) TasksView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// Refresh re-reads the current partition from the store
func (v TasksView) Refresh() TasksView {
	v.refresh()
	return v
}

func (v *TasksView) refresh() {
	if v.tab == TabActive {
		v.visible = v.tasks.ListActive()
	} else {
		v.visible = v.tasks.ListCompleted()
	}
	if v.cursor >= len(v.visible) {
		v.cursor = max(0, len(v.visible)-1)
	}
}

func (v *TasksView) visibleCount() int {
	available := v.height - 5
	if available < 1 {
		available = 1
	}
	return available
}

func (v *TasksView) ensureCursorVisible() {
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

// Update handles messages for the tasks view
func (v TasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case TasksModeAdd:
			return v.handleAddMode(msg)
		case TasksModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}
	return v, nil
}

func (v TasksView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	case "tab":
		if v.tab == TabActive {
			v.tab = TabCompleted
		} else {
			v.tab = TabActive
		}
		v.cursor = 0
		v.scrollOffset = 0
		v.refresh()

	case "a":
		v.mode = TasksModeAdd
		v.input.SetValue("")
		v.input.Focus()

	case "x", " ":
		if v.cursor < len(v.visible) {
			t := v.visible[v.cursor]
			if err := v.tasks.Toggle(t.ID); err != nil {
				v.statusMsg = fmt.Sprintf("Error: %v", err)
			} else if t.Completed {
				v.statusMsg = "Task reactivated"
			} else {
				v.statusMsg = "Task completed"
			}
			v.refresh()
		}

	case "d":
		if v.cursor < len(v.visible) {
			v.deleteID = v.visible[v.cursor].ID
			v.mode = TasksModeConfirmDelete
		}
	}

	return v, nil
}

func (v TasksView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		content := strings.TrimSpace(v.input.Value())
		v.mode = TasksModeNormal
		v.input.Blur()
		if content == "" {
			return v, nil
		}
		if _, err := v.tasks.Add(content); err != nil {
			v.statusMsg = fmt.Sprintf("Error: %v", err)
			return v, nil
		}
		// New tasks are always active; show them
		v.tab = TabActive
		v.cursor = 0
		v.scrollOffset = 0
		v.refresh()
		v.statusMsg = "Task added"
		return v, nil

	case "esc":
		v.mode = TasksModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v TasksView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := v.tasks.Delete(v.deleteID); err != nil {
			v.statusMsg = fmt.Sprintf("Error: %v", err)
		} else {
			v.statusMsg = "Task deleted"
		}
		v.deleteID = ""
		v.mode = TasksModeNormal
		v.refresh()
	case "n", "esc":
		v.deleteID = ""
		v.mode = TasksModeNormal
	}
	return v, nil
}

// View renders the tasks view
func (v TasksView) View() string {
	styles := theme.CurrentStyles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("My Tasks"))
	b.WriteString("\n")

	// Tab bar
	active := styles.Tab.Render(fmt.Sprintf("Active (%d)", len(v.tasks.ListActive())))
	completed := styles.Tab.Render(fmt.Sprintf("Completed (%d)", len(v.tasks.ListCompleted())))
	if v.tab == TabActive {
		active = styles.TabOn.Render(fmt.Sprintf("Active (%d)", len(v.tasks.ListActive())))
	} else {
		completed = styles.TabOn.Render(fmt.Sprintf("Completed (%d)", len(v.tasks.ListCompleted())))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, active, completed))
	b.WriteString("\n")

	switch v.mode {
	case TasksModeAdd:
		b.WriteString(styles.Input.Render(v.input.View()))
		b.WriteString("\n")
	case TasksModeConfirmDelete:
		b.WriteString(styles.Error.Render("Delete this task? (y/n)"))
		b.WriteString("\n")
	}

	if len(v.visible) == 0 {
		if v.tab == TabActive {
			b.WriteString(styles.Subtitle.Render("No active tasks. Press 'a' to add one."))
		} else {
			b.WriteString(styles.Subtitle.Render("No completed tasks."))
		}
		return b.String()
	}

	count := v.visibleCount()
	end := min(v.scrollOffset+count, len(v.visible))

	for i := v.scrollOffset; i < end; i++ {
		t := v.visible[i]

		check := "[ ] "
		line := check + t.Content
		var rendered string
		switch {
		case t.Completed && i == v.cursor:
			rendered = styles.ItemSelected.Render("[x] " + t.Content)
		case t.Completed:
			rendered = styles.ItemDone.Render("[x] " + t.Content)
		case i == v.cursor:
			rendered = styles.ItemSelected.Render(line)
		default:
			rendered = styles.ItemNormal.Render(line)
		}
		b.WriteString(rendered)

		if t.Completed && t.CompletedAt != nil {
			b.WriteString(" " + styles.Meta.Render("done "+FormatDate(*t.CompletedAt)))
		}
		b.WriteString("\n")
	}

	if v.statusMsg != "" {
		b.WriteString(styles.Status.Render(v.statusMsg))
	}

	return b.String()
}
