package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hollis/jot/internal/app"
	"github.com/hollis/jot/internal/ui/theme"
	"github.com/hollis/jot/internal/ui/views"
)

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView View
	notesView   views.NotesView
	tasksView   views.TasksView
	editorView  views.EditorView
	helpVisible bool

	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	return RootModel{
		app:         application,
		keys:        DefaultKeyMap(),
		help:        h,
		currentView: ViewNotes,
		notesView:   views.NewNotesView(application.Notes),
		tasksView:   views.NewTasksView(application.Tasks),
		editorView:  views.NewEditorView(application.Notes),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.notesView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		contentHeight := m.height - 4
		m.notesView = m.notesView.SetSize(m.width, contentHeight)
		m.tasksView = m.tasksView.SetSize(m.width, contentHeight)
		m.editorView = m.editorView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := false
		switch m.currentView {
		case ViewNotes:
			isInputMode = m.notesView.IsInputMode()
		case ViewTasks:
			isInputMode = m.tasksView.IsInputMode()
		case ViewEditor:
			isInputMode = m.editorView.IsInputMode()
		}

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.statusMsg = fmt.Sprintf("Theme: %s", theme.Cycle())
			return m, nil
		}

		// Skip other global keys when in input mode
		if isInputMode {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.NotesView):
			m.currentView = ViewNotes
			m.notesView = m.notesView.Refresh()
			return m, m.notesView.Init()
		case key.Matches(msg, m.keys.TasksView):
			m.currentView = ViewTasks
			m.tasksView = m.tasksView.Refresh()
			return m, m.tasksView.Init()
		}

	case views.OpenNoteRequest:
		m.editorView = m.editorView.SetNote(msg.NoteID)
		m.currentView = ViewEditor
		return m, m.editorView.Init()

	case views.EditorClosedRequest:
		m.currentView = ViewNotes
		m.notesView = m.notesView.Refresh()
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil
	}

	// Delegate to current view
	switch m.currentView {
	case ViewNotes:
		newView, cmd := m.notesView.Update(msg)
		m.notesView = newView.(views.NotesView)
		cmds = append(cmds, cmd)
	case ViewTasks:
		newView, cmd := m.tasksView.Update(msg)
		m.tasksView = newView.(views.TasksView)
		cmds = append(cmds, cmd)
	case ViewEditor:
		newView, cmd := m.editorView.Update(msg)
		m.editorView = newView.(views.EditorView)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	var content string
	if m.helpVisible {
		content = m.help.View(m.keys)
	} else {
		switch m.currentView {
		case ViewNotes:
			content = m.notesView.View()
		case ViewTasks:
			content = m.tasksView.View()
		case ViewEditor:
			content = m.editorView.View()
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.CurrentStyles()

	title := styles.Header.Render("jot")
	viewIndicator := styles.Footer.Render(fmt.Sprintf("[%s]", m.currentView.String()))
	themeIndicator := styles.Footer.Render(fmt.Sprintf("theme: %s", theme.Current().Name))

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(themeIndicator)
	if gap < 0 {
		gap = 0
	}

	return left + strings.Repeat(" ", gap) + themeIndicator
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.CurrentStyles()

	var statusLine string
	if m.errorMsg != "" {
		statusLine = styles.Error.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = styles.Status.Render(m.statusMsg)
	}

	hints := m.help.View(m.keys)
	if statusLine != "" {
		return statusLine + "\n" + hints
	}
	return "\n" + hints
}
