package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuShapeAndRecentSection(t *testing.T) {
	s := NewShell(false)
	tree := s.Menu(nil)
	if got := len(tree); got != 4 {
		t.Fatalf("expected 4 roots, got %d", got)
	}
	recent := tree[0].Children[2]
	if recent.Title() != "Open Recent" {
		t.Fatalf("expected recent submenu, got %q", recent.Title())
	}
	if len(recent.Children) != 1 || !recent.Children[0].Disabled {
		t.Fatalf("expected disabled placeholder in empty recent menu")
	}

	tree = s.Menu([]string{"notes.md", "todo.txt"})
	recent = tree[0].Children[2]
	if len(recent.Children) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(recent.Children))
	}
	msg, ok := recent.Children[0].Message.(OpenFileMsg)
	if !ok || msg.Name != "notes.md" {
		t.Fatalf("unexpected recent entry message: %#v", recent.Children[0].Message)
	}
}

func TestHandleOpenFileUpdatesBuffer(t *testing.T) {
	s := NewShell(false)
	status, cmd := s.Handle(OpenFileMsg{Name: "notes.md"})
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if status != "Opened notes.md" {
		t.Fatalf("unexpected status %q", status)
	}
	if s.fileName != "notes.md" {
		t.Fatalf("expected buffer to switch, got %q", s.fileName)
	}
}

func TestHandleToggleFlipsSettingAndLabel(t *testing.T) {
	s := NewShell(false)
	status, _ := s.Handle(ToggleMsg{Setting: "wrap"})
	if status != "Wrap lines: on" {
		t.Fatalf("unexpected status %q", status)
	}
	if !s.wrap {
		t.Fatalf("expected wrap to be enabled")
	}
	tree := s.Menu(nil)
	wrapItem := tree[2].Children[0]
	if !strings.HasPrefix(wrapItem.Title(), "✓ ") {
		t.Fatalf("expected checked label, got %q", wrapItem.Title())
	}
	status, _ = s.Handle(ToggleMsg{Setting: "wrap"})
	if status != "Wrap lines: off" {
		t.Fatalf("unexpected status %q", status)
	}
}

func TestHandleThemeMarksActiveSwatch(t *testing.T) {
	s := NewShell(false)
	if _, cmd := s.Handle(ThemeMsg{Name: "Ember"}); cmd != nil {
		t.Fatalf("expected no command")
	}
	if s.theme != "Ember" {
		t.Fatalf("expected theme change, got %q", s.theme)
	}
	tree := s.Menu(nil)
	themeMenu := tree[2].Children[3]
	if themeMenu.Title() != "Theme" {
		t.Fatalf("expected theme submenu, got %q", themeMenu.Title())
	}
	for _, child := range themeMenu.Children {
		sw, ok := child.Content.(swatch)
		if !ok {
			t.Fatalf("expected swatch content on %q", child.Title())
		}
		if sw.active != (child.Title() == "Ember") {
			t.Fatalf("wrong active mark on %q", child.Title())
		}
	}
}

func TestQuitActionIssuesQuitCommand(t *testing.T) {
	s := NewShell(false)
	status, cmd := s.Handle(ActionMsg{Name: "quit"})
	if status != "" {
		t.Fatalf("unexpected status %q", status)
	}
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg from command")
	}
}

func TestVerboseShellReportsEditorActions(t *testing.T) {
	quiet := NewShell(false)
	if status, _ := quiet.Handle(ActionMsg{Name: "copy"}); status != "" {
		t.Fatalf("expected silence, got %q", status)
	}
	loud := NewShell(true)
	if status, _ := loud.Handle(ActionMsg{Name: "copy"}); status != "Editor action: copy" {
		t.Fatalf("unexpected status %q", status)
	}
}

func TestBodyLogsRecentActivations(t *testing.T) {
	s := NewShell(false)
	s.Handle(ThemeMsg{Name: "Ember"})
	s.Handle(ToggleMsg{Setting: "wrap"})
	body := s.Body(40, 6)
	if !strings.Contains(body, "· theme Ember") || !strings.Contains(body, "· toggle wrap") {
		t.Fatalf("expected activation log in body:\n%s", body)
	}
	for i := 0; i < 20; i++ {
		s.Handle(ActionMsg{Name: "save"})
	}
	if len(s.log) != maxShellLog {
		t.Fatalf("expected log capped at %d entries, got %d", maxShellLog, len(s.log))
	}
}

func TestBodyReflectsSettings(t *testing.T) {
	s := NewShell(false)
	body := s.Body(40, 5)
	lines := strings.Split(body, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "untitled.txt") {
		t.Fatalf("expected title row, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  1") {
		t.Fatalf("expected line numbers, got %q", lines[1])
	}

	s.Handle(ToggleMsg{Setting: "numbers"})
	lines = strings.Split(s.Body(40, 5), "\n")
	if !strings.HasPrefix(lines[1], "~") {
		t.Fatalf("expected tilde rows, got %q", lines[1])
	}

	s.Handle(ActionMsg{Name: "cut"})
	if !strings.Contains(s.Body(40, 2), "[+]") {
		t.Fatalf("expected dirty marker in title")
	}
}
