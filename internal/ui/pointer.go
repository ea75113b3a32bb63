package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/overlay"
)

const wheelStep = 3

// handleMouseMsg drives the pointer half of the state machine: motion moves
// hovers and auto-expands submenus, presses open or dismiss, releases
// activate, and the wheel scrolls the panel under the cursor.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.ensureLayout()
	m.cursor = overlay.Point{X: ev.X, Y: ev.Y}
	switch ev.Action {
	case tea.MouseActionMotion:
		m.pointerMotion()
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			m.pointerWheel(-wheelStep)
		case tea.MouseButtonWheelDown:
			m.pointerWheel(wheelStep)
		case tea.MouseButtonLeft:
			return m.pointerPress()
		}
	case tea.MouseActionRelease:
		return m.pointerRelease()
	}
	return nil
}

// pointerMotion re-hit-tests the bar and every open panel, topmost first.
// Hovering a bar entry never opens it; panels auto-expand on hover.
func (m *Model) pointerMotion() {
	pt := m.cursor
	if idx := m.barIndexAt(pt); idx >= 0 {
		if idx != m.barHover && m.tree[idx].Selectable() {
			m.barHover = idx
			events.Menu.Hover(-1, idx)
		}
		return
	}
	if len(m.levels) == 0 {
		// Pointer owns the bar highlight only outside keyboard menu mode.
		if m.barHover >= 0 && !m.altDown {
			m.barHover = -1
		}
		return
	}
	if m.barHover != m.path[0] {
		m.barHover = m.path[0]
	}
	for d := len(m.levels) - 1; d >= 0; d-- {
		lvl := m.levels[d]
		if !lvl.Frame.Contains(pt) {
			continue
		}
		if idx := lvl.HitTest(pt); idx >= 0 && idx != lvl.Hover && lvl.SetHover(idx) {
			events.Menu.Hover(d, idx)
			m.reconcileExpansion(d, idx)
		}
		return
	}
}

// reconcileExpansion lines the open chain up with a fresh hover: an item
// with children expands one level, a leaf collapses anything deeper.
func (m *Model) reconcileExpansion(depth, index int) {
	node := m.levels[depth].ItemAt(index)
	if node == nil {
		return
	}
	if node.HasChildren() && !node.Disabled {
		if len(m.path) > depth+1 && m.path[depth+1] == index {
			return
		}
		m.expandAt(depth, index)
		return
	}
	m.closeToDepth(depth + 1)
}

func (m *Model) pointerPress() tea.Cmd {
	pt := m.cursor
	events.Pointer.Press(pt.X, pt.Y)
	if idx := m.barIndexAt(pt); idx >= 0 {
		m.pressed = true
		return m.OpenRoot(idx)
	}
	for d := len(m.levels) - 1; d >= 0; d-- {
		lvl := m.levels[d]
		if !lvl.Frame.Contains(pt) {
			continue
		}
		if idx := lvl.HitTest(pt); idx >= 0 {
			lvl.SetHover(idx)
		}
		return nil
	}
	if m.engaged() {
		events.Pointer.ClickAway(pt.X, pt.Y)
		m.disengage()
	}
	return nil
}

func (m *Model) pointerRelease() tea.Cmd {
	pt := m.cursor
	m.pressed = false
	if m.barIndexAt(pt) >= 0 {
		return nil
	}
	for d := len(m.levels) - 1; d >= 0; d-- {
		lvl := m.levels[d]
		if !lvl.Frame.Contains(pt) {
			continue
		}
		idx := lvl.HitTest(pt)
		if idx < 0 {
			return nil
		}
		node := lvl.ItemAt(idx)
		if node == nil || !node.Selectable() || node.Disabled {
			return nil
		}
		if node.HasChildren() {
			lvl.SetHover(idx)
			if !(len(m.path) > d+1 && m.path[d+1] == idx) {
				m.expandAt(d, idx)
			}
			return nil
		}
		return m.activateAt(d, idx)
	}
	return nil
}

func (m *Model) pointerWheel(step int) {
	pt := m.cursor
	for d := len(m.levels) - 1; d >= 0; d-- {
		lvl := m.levels[d]
		if !lvl.Frame.Contains(pt) {
			continue
		}
		if lvl.ScrollBy(step, m.maxVisibleItems()) {
			m.layoutDirty = true
		}
		return
	}
}

func (m *Model) barIndexAt(pt overlay.Point) int {
	for i, r := range m.barRects {
		if r.Contains(pt) {
			return i
		}
	}
	return -1
}
