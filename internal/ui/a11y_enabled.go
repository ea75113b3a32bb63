//go:build a11y

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/a11y"
)

// a11yFocus wires the screen-reader focus bridge into the shell when built
// with the a11y tag.
type a11yFocus struct {
	bridge  *a11y.Bridge
	surface *rootSurface
}

// rootSurface adapts the model to the bridge's Surface. Activation flows
// through OpenRoot like every other input path; the resulting command is
// captured so the update loop can run it.
type rootSurface struct {
	m   *Model
	cmd tea.Cmd
}

func (s *rootSurface) RootCount() int { return s.m.RootCount() }

func (s *rootSurface) RootLabel(index int) string { return s.m.RootLabel(index) }

func (s *rootSurface) ActivateRoot(index int) { s.cmd = s.m.OpenRoot(index) }

func (f *a11yFocus) init(m *Model) {
	f.surface = &rootSurface{m: m}
	f.bridge = a11y.New(f.surface)
}

// handleKey consumes the assistive chords: alt+left and alt+right move the
// focus cursor without opening anything, alt+enter activates the focused
// root. Announcements surface in the status line.
func (f *a11yFocus) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if f.bridge == nil {
		return nil, false
	}
	switch msg.String() {
	case "alt+right":
		f.announce(f.bridge.FocusNext())
		return nil, true
	case "alt+left":
		f.announce(f.bridge.FocusPrev())
		return nil, true
	case "alt+enter":
		f.surface.cmd = nil
		f.bridge.Activate()
		cmd := f.surface.cmd
		f.surface.cmd = nil
		return cmd, true
	}
	return nil, false
}

func (f *a11yFocus) announce(text string) {
	if text == "" {
		return
	}
	f.surface.m.setInfo(text)
}

func (f *a11yFocus) reset() {
	if f.bridge != nil {
		f.bridge.Reset()
	}
}
