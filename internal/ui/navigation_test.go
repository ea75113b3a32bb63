package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/menu"
)

func keyPress(kind tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kind}
}

func TestOpenRootOpensDropdownWithoutHover(t *testing.T) {
	m, _ := newTestModel()
	if cmd := m.OpenRoot(0); cmd != nil {
		t.Fatalf("expected no command when opening a submenu root")
	}
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected path [0], got %v", got)
	}
	if m.BarHover() != 0 {
		t.Fatalf("expected bar hover on the opened root, got %d", m.BarHover())
	}
	if got := m.currentLevel().Hover; got != -1 {
		t.Fatalf("expected opened level to start unhovered, got %d", got)
	}
}

func TestOpenRootTogglesSameRootClosed(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.OpenRoot(0)
	if m.Depth() != 0 {
		t.Fatalf("expected menu closed after toggling, got depth %d", m.Depth())
	}
	if m.BarHover() != 0 {
		t.Fatalf("expected bar to stay engaged, got hover %d", m.BarHover())
	}
}

func TestOpenRootReplacesOpenPath(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.expandAt(0, 3)
	m.OpenRoot(1)
	if got := m.Path(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected path [1], got %v", got)
	}
	if m.Depth() != 1 {
		t.Fatalf("expected a single level, got %d", m.Depth())
	}
}

func TestOpenRootIgnoresDisabledRoot(t *testing.T) {
	app := &testApp{tree: menu.Tree{
		menu.Submenu("&File", menu.Item("&New", testMsg{"new"})),
		menu.Submenu("&Admin", menu.Item("&Wipe", testMsg{"wipe"})).WithDisabled(true),
	}}
	m := NewModel(app, 80, 24, false, false, false, nil)
	m.OpenRoot(1)
	if m.Depth() != 0 {
		t.Fatalf("expected disabled root to stay closed, got depth %d", m.Depth())
	}
}

func TestLeafRootEmitsMessageAndDisengages(t *testing.T) {
	app := &testApp{tree: menu.Tree{
		menu.Submenu("&File", menu.Item("&New", testMsg{"new"})),
		menu.Item("A&bout", testMsg{"about"}),
	}}
	m := NewModel(app, 80, 24, false, false, false, nil)
	cmd := m.OpenRoot(1)
	if cmd == nil {
		t.Fatalf("expected command from leaf root activation")
	}
	if got := cmd().(testMsg).label; got != "about" {
		t.Fatalf("expected about message, got %q", got)
	}
	if m.Depth() != 0 || m.BarHover() != -1 {
		t.Fatalf("expected full disengage, got depth %d hover %d", m.Depth(), m.BarHover())
	}
}

func TestCloseAllClearsEverythingOpen(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.expandAt(0, 3)
	m.altDown = true
	m.pressed = true
	m.CloseAll()
	if m.Depth() != 0 {
		t.Fatalf("expected no open levels, got %d", m.Depth())
	}
	if m.Path() != nil {
		t.Fatalf("expected empty path, got %v", m.Path())
	}
	if m.altDown || m.pressed {
		t.Fatalf("expected transient input flags cleared")
	}
	if m.BarHover() != 0 {
		t.Fatalf("expected bar hover to survive close, got %d", m.BarHover())
	}
}

func TestEscapeClosesOneLevelAtATime(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.expandAt(0, 3)

	m.handleKeyMsg(keyPress(tea.KeyEscape))
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected path [0] after first escape, got %v", got)
	}
	if got := m.levels[0].Hover; got != 3 {
		t.Fatalf("expected parent hover preserved on 3, got %d", got)
	}

	m.handleKeyMsg(keyPress(tea.KeyEscape))
	if m.Depth() != 0 {
		t.Fatalf("expected menu closed after second escape, got depth %d", m.Depth())
	}
	if m.BarHover() != 0 {
		t.Fatalf("expected bar still engaged after second escape, got %d", m.BarHover())
	}

	m.handleKeyMsg(keyPress(tea.KeyEscape))
	if m.BarHover() != -1 {
		t.Fatalf("expected third escape to disengage the bar, got %d", m.BarHover())
	}
}

func TestMenuKeyTogglesKeyboardMenuMode(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	if m.BarHover() != 0 {
		t.Fatalf("expected first root hovered, got %d", m.BarHover())
	}
	if !m.showMnemonics() {
		t.Fatalf("expected mnemonics revealed in menu mode")
	}
	if m.Depth() != 0 {
		t.Fatalf("expected menu mode to open nothing, got depth %d", m.Depth())
	}

	m.handleKeyMsg(keyPress(tea.KeyF10))
	if m.BarHover() != -1 || m.showMnemonics() {
		t.Fatalf("expected second press to disengage")
	}
}

func TestRightArrowWrapsAcrossAllRoots(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	start := m.BarHover()
	for i := 0; i < m.RootCount(); i++ {
		m.handleKeyMsg(keyPress(tea.KeyRight))
	}
	if m.BarHover() != start {
		t.Fatalf("expected hover back on root %d after a full cycle, got %d", start, m.BarHover())
	}
}

func TestLeftArrowWrapsBackwards(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	m.handleKeyMsg(keyPress(tea.KeyLeft))
	if got := m.BarHover(); got != m.RootCount()-1 {
		t.Fatalf("expected wrap to last root, got %d", got)
	}
}

func TestBarMovementDragsOpenPanelAlong(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.handleKeyMsg(keyPress(tea.KeyRight))
	if got := m.Path(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected the next root's panel open, got %v", got)
	}
	if m.BarHover() != 1 {
		t.Fatalf("expected bar hover to follow, got %d", m.BarHover())
	}
}

func TestBarMovementIntoChildlessRootClosesPanel(t *testing.T) {
	app := &testApp{tree: menu.Tree{
		menu.Submenu("&File", menu.Item("&New", testMsg{"new"})),
		menu.Item("A&bout", testMsg{"about"}),
	}}
	m := NewModel(app, 80, 24, false, false, false, nil)
	m.OpenRoot(0)
	m.handleKeyMsg(keyPress(tea.KeyRight))
	if m.Depth() != 0 {
		t.Fatalf("expected panel closed over a childless root, got depth %d", m.Depth())
	}
	if m.BarHover() != 1 {
		t.Fatalf("expected bar hover on the childless root, got %d", m.BarHover())
	}
}

func TestArrowsIgnoredWhenDisengaged(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyDown))
	m.handleKeyMsg(keyPress(tea.KeyRight))
	if m.Depth() != 0 || m.BarHover() != -1 {
		t.Fatalf("expected arrows to do nothing while disengaged")
	}
}

func TestDownOpensHoveredRootFromBar(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	m.handleKeyMsg(keyPress(tea.KeyDown))
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected hovered root opened, got %v", got)
	}
	if got := m.currentLevel().Hover; got != 0 {
		t.Fatalf("expected hover to enter from the top, got %d", got)
	}
}

func TestUpOpensHoveredRootFromBottom(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	m.handleKeyMsg(keyPress(tea.KeyUp))
	if m.Depth() != 1 {
		t.Fatalf("expected hovered root opened, got depth %d", m.Depth())
	}
	if got := m.currentLevel().Hover; got != 4 {
		t.Fatalf("expected hover to enter from the bottom, got %d", got)
	}
}

func TestHoverSkipsSeparatorsAndWraps(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	want := []int{0, 1, 3, 4, 0}
	for _, expect := range want {
		m.handleKeyMsg(keyPress(tea.KeyDown))
		if got := m.currentLevel().Hover; got != expect {
			t.Fatalf("expected hover %d, got %d", expect, got)
		}
	}
}

func TestHomeEndJumpHover(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.handleKeyMsg(keyPress(tea.KeyEnd))
	if got := m.currentLevel().Hover; got != 4 {
		t.Fatalf("expected hover on last selectable, got %d", got)
	}
	m.handleKeyMsg(keyPress(tea.KeyHome))
	if got := m.currentLevel().Hover; got != 0 {
		t.Fatalf("expected hover on first selectable, got %d", got)
	}
}

func TestEnterActivatesLeafAndCloses(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.handleKeyMsg(keyPress(tea.KeyDown))
	cmd := m.handleKeyMsg(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected activation command")
	}
	if got := cmd().(testMsg).label; got != "new" {
		t.Fatalf("expected new message, got %q", got)
	}
	if m.Depth() != 0 || m.BarHover() != -1 {
		t.Fatalf("expected activation to disengage, got depth %d hover %d", m.Depth(), m.BarHover())
	}
}

func TestEnterExpandsSubmenu(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.levels[0].SetHover(3)
	if cmd := m.handleKeyMsg(keyPress(tea.KeyEnter)); cmd != nil {
		t.Fatalf("expected no command when expanding")
	}
	if got := m.Path(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Fatalf("expected path [0 3], got %v", got)
	}
	if got := m.currentLevel().Hover; got != -1 {
		t.Fatalf("expected child level unhovered, got %d", got)
	}
}

func TestEnterWithoutHoverDoesNothing(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	if cmd := m.handleKeyMsg(keyPress(tea.KeyEnter)); cmd != nil {
		t.Fatalf("expected no command without a hovered row")
	}
	if m.Depth() != 1 {
		t.Fatalf("expected panel to stay open, got depth %d", m.Depth())
	}
}

func TestEnterOnBarOpensHoveredRoot(t *testing.T) {
	m, _ := newTestModel()
	m.handleKeyMsg(keyPress(tea.KeyF10))
	m.handleKeyMsg(keyPress(tea.KeyEnter))
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected hovered root opened, got %v", got)
	}
}

func TestDisabledLeafSwallowsActivation(t *testing.T) {
	m, app := newTestModel()
	m.OpenRoot(1)
	m.levels[0].SetHover(2)
	if cmd := m.handleKeyMsg(keyPress(tea.KeyEnter)); cmd != nil {
		t.Fatalf("expected no command from a disabled entry")
	}
	if m.Depth() != 1 {
		t.Fatalf("expected menu to stay open, got depth %d", m.Depth())
	}
	if len(app.handled) != 0 {
		t.Fatalf("expected no message delivered, got %d", len(app.handled))
	}
}

func TestSpaceActivatesLikeEnter(t *testing.T) {
	m, _ := newTestModel()
	m.OpenRoot(0)
	m.handleKeyMsg(keyPress(tea.KeyDown))
	cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if cmd == nil {
		t.Fatalf("expected space to activate the hovered entry")
	}
	if got := cmd().(testMsg).label; got != "new" {
		t.Fatalf("expected new message, got %q", got)
	}
}
