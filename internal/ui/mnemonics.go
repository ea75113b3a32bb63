package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/logging/events"
)

// handleAltChord latches the mnemonic reveal and matches the chorded rune.
// Terminals report no key-up, so the latch stays until the menu closes.
func (m *Model) handleAltChord(r rune) tea.Cmd {
	if !m.altDown {
		m.altDown = true
		m.layoutDirty = true
	}
	return m.activateMnemonic(r)
}

// activateMnemonic resolves r against the deepest open level, or against the
// root entries when nothing is open, and activates the match as if clicked.
func (m *Model) activateMnemonic(r rune) tea.Cmd {
	if lvl := m.currentLevel(); lvl != nil {
		index, ok := lvl.Keys.Lookup(r)
		if !ok {
			events.Menu.Mnemonic(r, -1, false)
			return nil
		}
		events.Menu.Mnemonic(r, index, true)
		return m.activateAt(len(m.levels)-1, index)
	}
	index, ok := m.rootKeys.Lookup(r)
	if !ok {
		events.Menu.Mnemonic(r, -1, false)
		return nil
	}
	events.Menu.Mnemonic(r, index, true)
	return m.OpenRoot(index)
}

// handleRune routes a plain printable rune: mnemonic activation while the
// reveal latch is on, type-ahead hover search otherwise.
func (m *Model) handleRune(r rune) tea.Cmd {
	if m.altDown {
		return m.activateMnemonic(r)
	}
	if lvl := m.currentLevel(); lvl != nil {
		m.typeAhead(lvl, r)
	}
	return nil
}

func (m *Model) typeAhead(lvl *level, r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	if lvl.AppendTypeAhead(r) {
		m.syncViewport(lvl)
		m.layoutDirty = true
	}
	events.Menu.TypeAhead(len(m.levels)-1, lvl.TypeAheadQuery(), lvl.Hover)
}
