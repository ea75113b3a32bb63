//go:build !a11y

package ui

import tea "github.com/charmbracelet/bubbletea"

// Stubbed no-op versions when the "a11y" build tag is not set.

type a11yFocus struct{}

func (a11yFocus) init(*Model) {}

func (a11yFocus) handleKey(tea.KeyMsg) (tea.Cmd, bool) { return nil, false }

func (a11yFocus) reset() {}
