package menu

import "github.com/charmbracelet/lipgloss"

// Content lets an entry draw something other than its text label, such as a
// swatch or a gauge. The panel layout asks for the width up front and hands
// the row style to Render so custom entries stay consistent with the theme.
type Content interface {
	Width() int
	Render(style lipgloss.Style) string
}

// Text is the trivial Content: a fixed string rendered with the row style.
type Text string

func (t Text) Width() int {
	return lipgloss.Width(string(t))
}

func (t Text) Render(style lipgloss.Style) string {
	return style.Render(string(t))
}
