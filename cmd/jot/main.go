package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollis/jot/internal/app"
	"github.com/hollis/jot/internal/ui"
	"github.com/hollis/jot/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "note":
			handleAddNote(os.Args[2:])
			return
		case "task":
			handleAddTask(os.Args[2:])
			return
		case "version":
			fmt.Printf("jot v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	themeFlag := flag.String("theme", "", "Theme name (slate, nord)")
	flag.Parse()

	// Run TUI
	if err := runTUI(*themeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `jot - personal notes and tasks

Usage:
  jot                       Start the TUI
  jot note <title>          Quick add a note
  jot task <content>        Quick add a task
  jot version               Show version
  jot help                  Show this help

TUI Options:
  --theme <name>    Theme (slate, nord)

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                g/G           Go to top/bottom
                1/2           Switch notes/tasks

  Notes:        a             Add note
                enter         Open note
                /             Search
                d             Delete (with confirm)

  Editor:       ctrl+s        Save
                ctrl+y        Copy content to clipboard
                ctrl+d        Delete note
                esc           Save and close

  Tasks:        a             Add task
                x or space    Toggle done
                tab           Active/Completed tabs
                d             Delete (with confirm)

  General:      ctrl+t        Cycle theme
                ?             Help
                q             Quit

Completed tasks are pruned automatically 30 days after completion.`

	fmt.Println(help)
}

func handleAddNote(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: jot note <title>")
		os.Exit(1)
	}

	application, err := app.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	title := strings.Join(args, " ")
	note, err := application.Notes.Add(title, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating note: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created note: %s\n", note.Title)
}

func handleAddTask(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: jot task <content>")
		os.Exit(1)
	}

	application, err := app.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	content := strings.Join(args, " ")
	task, err := application.Tasks.Add(content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating task: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created task: %s\n", task.Content)
}

func runTUI(themeName string) error {
	application, err := app.New(nil)
	if err != nil {
		return err
	}
	defer application.Close()

	if themeName != "" {
		if !theme.Set(themeName) {
			return fmt.Errorf("unknown theme: %s", themeName)
		}
	}

	model := ui.NewRootModel(application)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
