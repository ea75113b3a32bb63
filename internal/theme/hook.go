package theme

import "github.com/charmbracelet/lipgloss"

// ItemState describes one menu row for style selection.
type ItemState struct {
	// Bar marks a root entry rendered in the menu bar rather than a panel.
	Bar bool
	// Open marks the entry whose child panel is currently open.
	Open      bool
	Hovered   bool
	Disabled  bool
	Separator bool
	// Depth is the nesting depth of the panel holding the row, 0 for a root
	// panel. The default hook ignores it; custom hooks may shade by depth.
	Depth int
}

// Hook picks the style for one rendered row. Applications install their own
// hook to re-skin rows without replacing the whole style set.
type Hook func(*Styles, ItemState) lipgloss.Style

// DefaultHook resolves rows against the standard style set.
func DefaultHook(s *Styles, st ItemState) lipgloss.Style {
	if st.Separator {
		return *s.Separator
	}
	if st.Bar {
		switch {
		case st.Open:
			return *s.BarItemOpen
		case st.Hovered:
			return *s.BarItemHover
		default:
			return *s.BarItem
		}
	}
	switch {
	case st.Disabled && st.Hovered:
		return *s.ItemDisabledHover
	case st.Disabled:
		return *s.ItemDisabled
	case st.Hovered:
		return *s.ItemHover
	case st.Open:
		return *s.ItemOpen
	default:
		return *s.Item
	}
}
