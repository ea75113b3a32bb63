package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/ui/command"
	uistate "github.com/atomicstack/menubar/internal/ui/state"
)

// OpenRoot opens the root entry at index. Opening the root that is already
// open toggles the menu closed; opening a different root replaces the whole
// path. Leaf roots act as bar buttons and emit their message directly.
func (m *Model) OpenRoot(index int) tea.Cmd {
	if index < 0 || index >= len(m.tree) {
		return nil
	}
	node := m.tree[index]
	if node == nil || !node.Selectable() || node.Disabled {
		return nil
	}
	if len(m.path) > 0 && m.path[0] == index {
		m.CloseAll()
		return nil
	}
	m.barHover = index
	m.layoutDirty = true
	switch {
	case node.HasChildren():
		m.replaceRoot(index)
	case node.Message != nil:
		cmd := m.bus.Execute(command.Request{Label: node.Title(), Message: node.Message})
		m.disengage()
		return cmd
	}
	return nil
}

func (m *Model) replaceRoot(index int) {
	m.path = []int{index}
	m.levels = []*level{uistate.NewLevel(m.tree.ItemsAt(m.path))}
	m.layoutDirty = true
	events.Menu.Open(m.Path(), m.tree[index].Title())
}

// CloseAll closes every open level and clears the transient input flags.
// Bar engagement survives so Escape can back out one step at a time;
// disengage drops that too.
func (m *Model) CloseAll() {
	wasOpen := len(m.path) > 0
	m.path = nil
	m.levels = nil
	m.pressed = false
	m.altDown = false
	if wasOpen {
		m.layoutDirty = true
		events.Menu.CloseAll()
	}
}

func (m *Model) disengage() {
	m.CloseAll()
	if m.barHover >= 0 {
		m.barHover = -1
		m.layoutDirty = true
	}
}

// engaged reports whether the menu owns keyboard navigation, either with a
// panel open or with the bar highlighted.
func (m *Model) engaged() bool {
	return len(m.path) > 0 || m.barHover >= 0
}

func (m *Model) showMnemonics() bool {
	return m.alwaysShowKeys || m.altDown
}

// closeToDepth truncates the open chain so that depth levels remain.
func (m *Model) closeToDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(m.path) {
		return
	}
	m.path = m.path[:depth]
	m.levels = m.levels[:depth]
	m.layoutDirty = true
	events.Menu.Close(depth)
}

// expandAt pushes a fresh level for the children of the item at (depth,
// index), dropping anything previously open beneath that depth.
func (m *Model) expandAt(depth, index int) {
	prefix := make([]int, depth+1, depth+2)
	copy(prefix, m.path[:depth+1])
	prefix = append(prefix, index)
	m.path = prefix
	m.levels = append(m.levels[:depth+1], uistate.NewLevel(m.tree.ItemsAt(prefix)))
	m.layoutDirty = true
	if node := m.tree.At(prefix); node != nil {
		events.Menu.Open(m.Path(), node.Title())
	}
}

// activateAt acts on the item at (depth, index): expand it when it has
// children, emit its message and close everything when it is a leaf.
// Disabled entries take hover but swallow activation.
func (m *Model) activateAt(depth, index int) tea.Cmd {
	if depth < 0 || depth >= len(m.levels) {
		return nil
	}
	lvl := m.levels[depth]
	node := lvl.ItemAt(index)
	if node == nil || !node.Selectable() || node.Disabled {
		return nil
	}
	if node.HasChildren() {
		lvl.SetHover(index)
		m.expandAt(depth, index)
		return nil
	}
	cmd := m.bus.Execute(command.Request{Label: node.Title(), Message: node.Message})
	m.disengage()
	return cmd
}

func (m *Model) handleEscapeKey() tea.Cmd {
	switch {
	case len(m.path) == 1:
		m.CloseAll()
	case len(m.path) > 1:
		m.closeToDepth(len(m.path) - 1)
	case m.barHover >= 0 || m.altDown:
		m.disengage()
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if lvl := m.currentLevel(); lvl != nil {
		if lvl.Hover < 0 {
			return nil
		}
		return m.activateAt(len(m.levels)-1, lvl.Hover)
	}
	if m.barHover >= 0 {
		return m.OpenRoot(m.barHover)
	}
	return nil
}

// moveHover moves the deepest level's hover by delta, wrapping and stepping
// over separators. With the bar engaged but nothing open, Up/Down open the
// hovered root and enter its panel from the matching end.
func (m *Model) moveHover(delta int) {
	if lvl := m.currentLevel(); lvl != nil {
		if lvl.MoveHover(delta) {
			m.syncViewport(lvl)
			events.Menu.Hover(len(m.levels)-1, lvl.Hover)
		}
		return
	}
	if m.barHover < 0 || m.barHover >= len(m.tree) {
		return
	}
	if !m.tree[m.barHover].HasChildren() || m.tree[m.barHover].Disabled {
		return
	}
	m.replaceRoot(m.barHover)
	if lvl := m.currentLevel(); lvl != nil && lvl.MoveHover(delta) {
		m.syncViewport(lvl)
		events.Menu.Hover(0, lvl.Hover)
	}
}

func (m *Model) moveHoverHome() {
	if lvl := m.currentLevel(); lvl != nil {
		if lvl.MoveHoverHome() {
			m.syncViewport(lvl)
			events.Menu.Hover(len(m.levels)-1, lvl.Hover)
		}
	}
}

func (m *Model) moveHoverEnd() {
	if lvl := m.currentLevel(); lvl != nil {
		if lvl.MoveHoverEnd() {
			m.syncViewport(lvl)
			events.Menu.Hover(len(m.levels)-1, lvl.Hover)
		}
	}
}

// moveBarHover moves the root-level hover by step, wrapping across the bar.
// While a menu is open the open root follows the hover; a childless root
// closes the panel but keeps the bar engaged.
func (m *Model) moveBarHover(step int) {
	if len(m.tree) == 0 {
		return
	}
	var next int
	if m.barHover < 0 {
		if step >= 0 {
			next = menu.FirstSelectable(m.tree)
		} else {
			next = menu.LastSelectable(m.tree)
		}
	} else {
		next = menu.NextSelectable(m.tree, m.barHover, step)
	}
	if next < 0 || next == m.barHover {
		return
	}
	m.barHover = next
	m.layoutDirty = true
	events.Menu.Hover(-1, next)
	if len(m.path) == 0 || m.path[0] == next {
		return
	}
	if m.tree[next].HasChildren() && !m.tree[next].Disabled {
		m.replaceRoot(next)
	} else {
		m.CloseAll()
	}
}

// toggleMenuMode flips keyboard menu mode: engage the bar on the first
// selectable root with mnemonics revealed, or back out entirely.
func (m *Model) toggleMenuMode() {
	if m.engaged() {
		m.disengage()
		return
	}
	first := menu.FirstSelectable(m.tree)
	if first < 0 {
		return
	}
	m.barHover = first
	m.altDown = true
	m.layoutDirty = true
	events.Menu.Hover(-1, first)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureHoverVisible(m.maxVisibleItems())
	m.layoutDirty = true
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.clearInfo()
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if cmd, handled := m.focus.handleKey(keyMsg); handled {
		return cmd
	}
	if keyMsg.Alt && len(keyMsg.Runes) == 1 {
		return m.handleAltChord(keyMsg.Runes[0])
	}
	switch {
	case key.Matches(keyMsg, m.keys.Menu):
		m.toggleMenuMode()
		return nil
	case key.Matches(keyMsg, m.keys.Escape):
		return m.handleEscapeKey()
	}
	if !m.engaged() {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Enter):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Left):
		m.moveBarHover(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveBarHover(1)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveHover(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveHover(1)
	case key.Matches(keyMsg, m.keys.Home):
		m.moveHoverHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveHoverEnd()
	default:
		if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
			return m.handleRune(keyMsg.Runes[0])
		}
	}
	return nil
}
