package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/menu"
)

type testMsg struct {
	label string
}

// testApp is a minimal App: a fixed tree, a blank body, and a record of every
// activation message that came back through Handle.
type testApp struct {
	tree    menu.Tree
	status  string
	handled []tea.Msg
}

func (a *testApp) Menu(recent []string) menu.Tree {
	return a.tree
}

func (a *testApp) Body(width, height int) string {
	return ""
}

func (a *testApp) Handle(msg tea.Msg) (string, tea.Cmd) {
	a.handled = append(a.handled, msg)
	return a.status, nil
}

func fixtureTree() menu.Tree {
	return menu.Tree{
		menu.Submenu("&File",
			menu.Item("&New", testMsg{"new"}).WithShortcut("ctrl+n"),
			menu.Item("&Open", testMsg{"open"}).WithShortcut("ctrl+o"),
			menu.Separator(),
			menu.Submenu("Open &Recent",
				menu.Item("alpha.txt", testMsg{"alpha"}),
				menu.Item("beta.txt", testMsg{"beta"}),
			),
			menu.Item("&Quit", testMsg{"quit"}),
		),
		menu.Submenu("&Edit",
			menu.Item("Cu&t", testMsg{"cut"}),
			menu.Item("&Copy", testMsg{"copy"}),
			menu.Item("&Paste", testMsg{"paste"}).WithDisabled(true),
		),
		menu.Submenu("&Help",
			menu.Item("&About", testMsg{"about"}),
		),
	}
}

func newTestModel() (*Model, *testApp) {
	app := &testApp{tree: fixtureTree()}
	return NewModel(app, 80, 24, false, false, false, nil), app
}

func TestNewModelStartsClosed(t *testing.T) {
	m, _ := newTestModel()
	if m.Depth() != 0 {
		t.Fatalf("expected no open levels, got %d", m.Depth())
	}
	if m.Path() != nil {
		t.Fatalf("expected nil path, got %v", m.Path())
	}
	if m.BarHover() != -1 {
		t.Fatalf("expected no bar hover, got %d", m.BarHover())
	}
	if m.RootCount() != 3 {
		t.Fatalf("expected 3 roots, got %d", m.RootCount())
	}
	if got := m.RootLabel(0); got != "File" {
		t.Fatalf("expected stripped root label File, got %q", got)
	}
}

func TestSetTreePrunesStalePath(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.expandAt(0, 3)
	if got := m.Path(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Fatalf("expected path [0 3], got %v", got)
	}

	// Rebuild File without the nested submenu: the second level is stale,
	// the first survives.
	m.SetTree(menu.Tree{
		menu.Submenu("&File",
			menu.Item("&New", testMsg{"new"}),
		),
		menu.Submenu("&Edit",
			menu.Item("&Copy", testMsg{"copy"}),
		),
	})
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected path pruned to [0], got %v", got)
	}
	if len(m.levels) != 1 {
		t.Fatalf("expected one level, got %d", len(m.levels))
	}
	if len(m.levels[0].Items) != 1 {
		t.Fatalf("expected refreshed level items, got %d", len(m.levels[0].Items))
	}
}

func TestSetTreeDropsPathWhenRootVanishes(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(2)
	m.SetTree(menu.Tree{
		menu.Submenu("&File", menu.Item("&New", testMsg{"new"})),
	})
	if m.Depth() != 0 {
		t.Fatalf("expected all levels closed, got depth %d", m.Depth())
	}
	if m.BarHover() != 0 {
		t.Fatalf("expected bar hover clamped to last root, got %d", m.BarHover())
	}
}

func TestSetTreeReconcilesLevelHover(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	lvl := m.currentLevel()
	lvl.SetHover(4)

	m.SetTree(menu.Tree{
		menu.Submenu("&File",
			menu.Item("&New", testMsg{"new"}),
			menu.Item("&Open", testMsg{"open"}),
		),
		menu.Submenu("&Edit", menu.Item("&Copy", testMsg{"copy"})),
	})
	if got := m.currentLevel().Hover; got != 1 {
		t.Fatalf("expected hover clamped to last selectable, got %d", got)
	}
}

func TestUpdateRoutesUnknownMessagesToApp(t *testing.T) {
	m, app := newTestModel()
	app.status = "saved"
	m.Update(testMsg{"save"})
	if len(app.handled) != 1 {
		t.Fatalf("expected app to receive the message, got %d", len(app.handled))
	}
	if got := app.handled[0].(testMsg).label; got != "save" {
		t.Fatalf("expected save message, got %q", got)
	}
	if m.currentInfo() != "saved" {
		t.Fatalf("expected status to surface as info, got %q", m.currentInfo())
	}
}

func TestHandlerForMatchesPointerMessages(t *testing.T) {
	m, _ := newTestModel()
	if m.handlerFor(tea.KeyMsg{}) == nil {
		t.Fatalf("expected handler for tea.KeyMsg")
	}
	if m.handlerFor(&tea.KeyMsg{}) == nil {
		t.Fatalf("expected handler for *tea.KeyMsg")
	}
	if m.handlerFor(testMsg{}) != nil {
		t.Fatalf("expected no handler for app messages")
	}
}

func TestQuitBindingAlwaysQuits(t *testing.T) {
	m, _ := newTestModel()
	cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
