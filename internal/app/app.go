package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/menubar/internal/backend"
	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	WatchDir      string
	Width         int
	Height        int
	ShowFooter    bool
	ShowMnemonics bool
	Verbose       bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	var watcher *backend.Watcher
	if cfg.WatchDir != "" {
		watcher = backend.NewWatcher(cfg.WatchDir, 2*time.Second)
		defer watcher.Stop()
	}
	shell := NewShell(cfg.Verbose)
	model := ui.NewModel(shell, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.ShowMnemonics, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ActionMsg asks the shell to run a named editor command.
type ActionMsg struct {
	Name string
}

// OpenFileMsg opens a file picked from the recent-files section.
type OpenFileMsg struct {
	Name string
}

// ToggleMsg flips a boolean view setting.
type ToggleMsg struct {
	Setting string
}

// ThemeMsg selects a color theme.
type ThemeMsg struct {
	Name string
}

// Shell is the demo editor surface under the menu bar. It exists to give the
// menu something real to drive: a handful of settings, a current file, and a
// body render that reflects both plus a short log of received activations.
type Shell struct {
	verbose  bool
	fileName string
	dirty    bool
	wrap     bool
	lineNums bool
	theme    string
	log      []string
}

const maxShellLog = 8

// NewShell returns a shell with a fresh scratch buffer.
func NewShell(verbose bool) *Shell {
	return &Shell{
		verbose:  verbose,
		fileName: "untitled.txt",
		lineNums: true,
		theme:    "Slate",
	}
}

var themes = []struct {
	name  string
	color lipgloss.Color
}{
	{"Slate", lipgloss.Color("60")},
	{"Forest", lipgloss.Color("29")},
	{"Ember", lipgloss.Color("166")},
}

// Menu builds the full tree for the next pass. recent carries the file names
// from the watched directory, newest first.
func (s *Shell) Menu(recent []string) menu.Tree {
	return menu.Tree{
		menu.Submenu("&File",
			menu.Item("&New", ActionMsg{Name: "new"}).WithShortcut("ctrl+n"),
			menu.Item("&Open…", ActionMsg{Name: "open"}).WithShortcut("ctrl+o"),
			s.recentMenu(recent),
			menu.Separator(),
			menu.Item("&Save", ActionMsg{Name: "save"}).WithShortcut("ctrl+s"),
			menu.Item("Save &As…", ActionMsg{Name: "save-as"}),
			menu.Separator(),
			menu.Item("&Quit", ActionMsg{Name: "quit"}).WithShortcut("ctrl+q"),
		),
		menu.Submenu("&Edit",
			menu.Item("&Undo", ActionMsg{Name: "undo"}).WithShortcut("ctrl+z"),
			menu.Item("&Redo", ActionMsg{Name: "redo"}).WithShortcut("ctrl+y").WithDisabled(true),
			menu.Separator(),
			menu.Item("Cu&t", ActionMsg{Name: "cut"}).WithShortcut("ctrl+x"),
			menu.Item("&Copy", ActionMsg{Name: "copy"}).WithShortcut("ctrl+c"),
			menu.Item("&Paste", ActionMsg{Name: "paste"}).WithShortcut("ctrl+v"),
			menu.Separator(),
			menu.Item("&Find…", ActionMsg{Name: "find"}).WithShortcut("ctrl+f"),
		),
		menu.Submenu("&View",
			menu.Item(toggleLabel("&Wrap Lines", s.wrap), ToggleMsg{Setting: "wrap"}),
			menu.Item(toggleLabel("Line &Numbers", s.lineNums), ToggleMsg{Setting: "numbers"}),
			menu.Separator(),
			s.themeMenu(),
		),
		menu.Submenu("&Help",
			menu.Item("&Documentation", ActionMsg{Name: "docs"}),
			menu.Item("&About", ActionMsg{Name: "about"}),
		),
	}
}

func (s *Shell) recentMenu(recent []string) *menu.Node {
	if len(recent) == 0 {
		return menu.Submenu("Open &Recent",
			menu.Item("(no recent files)", nil).WithDisabled(true),
		)
	}
	items := make([]*menu.Node, 0, len(recent))
	for _, name := range recent {
		items = append(items, menu.Item(name, OpenFileMsg{Name: name}))
	}
	return menu.Submenu("Open &Recent", items...)
}

func (s *Shell) themeMenu() *menu.Node {
	items := make([]*menu.Node, 0, len(themes))
	for _, t := range themes {
		node := menu.Item(t.name, ThemeMsg{Name: t.name}).
			WithContent(swatch{name: t.name, color: t.color, active: s.theme == t.name})
		items = append(items, node)
	}
	return menu.Submenu("&Theme", items...)
}

func toggleLabel(label string, on bool) string {
	if on {
		return "✓ " + label
	}
	return "  " + label
}

// swatch draws a theme entry as a colored block beside its name.
type swatch struct {
	name   string
	color  lipgloss.Color
	active bool
}

func (s swatch) Width() int {
	return lipgloss.Width(s.name) + 5
}

func (s swatch) Render(style lipgloss.Style) string {
	block := lipgloss.NewStyle().Foreground(s.color).Inline(true).Render("██")
	mark := "  "
	if s.active {
		mark = "• "
	}
	return style.Render(mark) + block + style.Render(" "+s.name)
}

// Handle applies an activation message and reports an optional status line.
// Every activation also lands in the body's log.
func (s *Shell) Handle(msg tea.Msg) (string, tea.Cmd) {
	switch msg := msg.(type) {
	case ActionMsg:
		s.note("action " + msg.Name)
		return s.runAction(msg.Name)
	case OpenFileMsg:
		s.note("open " + msg.Name)
		s.fileName = msg.Name
		s.dirty = false
		return fmt.Sprintf("Opened %s", msg.Name), nil
	case ToggleMsg:
		s.note("toggle " + msg.Setting)
		return s.toggle(msg.Setting), nil
	case ThemeMsg:
		s.note("theme " + msg.Name)
		s.theme = msg.Name
		return fmt.Sprintf("Theme: %s", msg.Name), nil
	}
	return "", nil
}

func (s *Shell) note(line string) {
	s.log = append(s.log, line)
	if len(s.log) > maxShellLog {
		s.log = s.log[len(s.log)-maxShellLog:]
	}
}

func (s *Shell) runAction(name string) (string, tea.Cmd) {
	switch name {
	case "quit":
		events.App.Quit("menu")
		return "", tea.Quit
	case "new":
		s.fileName = "untitled.txt"
		s.dirty = false
		return "New buffer", nil
	case "open":
		return "Open: pick a file from Open Recent", nil
	case "save":
		s.dirty = false
		return fmt.Sprintf("Saved %s", s.fileName), nil
	case "save-as":
		return "Save As is not wired in the demo", nil
	case "about":
		return "menubar demo shell", nil
	case "docs":
		return "See the README for the embedding guide", nil
	case "cut", "copy", "paste", "undo", "find":
		s.dirty = name == "cut" || name == "paste" || name == "undo"
		if !s.verbose {
			return "", nil
		}
		return fmt.Sprintf("Editor action: %s", name), nil
	}
	return "", nil
}

func (s *Shell) toggle(setting string) string {
	switch setting {
	case "wrap":
		s.wrap = !s.wrap
		return fmt.Sprintf("Wrap lines: %s", onOff(s.wrap))
	case "numbers":
		s.lineNums = !s.lineNums
		return fmt.Sprintf("Line numbers: %s", onOff(s.lineNums))
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Body renders the placeholder editor content for the given area, with the
// most recent activations at the bottom.
func (s *Shell) Body(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := s.fileName
	if s.dirty {
		title += " [+]"
	}
	logRows := len(s.log)
	if logRows > height-1 {
		logRows = height - 1
	}
	rows := make([]string, 0, height)
	rows = append(rows, "  "+title)
	for len(rows) < height-logRows {
		prefix := "~"
		if s.lineNums {
			prefix = fmt.Sprintf("%3d", len(rows))
		}
		rows = append(rows, prefix)
	}
	for _, line := range s.log[len(s.log)-logRows:] {
		rows = append(rows, "  · "+line)
	}
	return strings.Join(rows, "\n")
}
