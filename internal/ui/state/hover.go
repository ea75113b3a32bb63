package state

import "github.com/atomicstack/menubar/internal/menu"

// MoveHover steps the hover by delta rows, wrapping around the list and
// stepping over separators in the direction of travel. With nothing hovered
// it enters the list from the matching end.
func (l *Level) MoveHover(delta int) bool {
	if len(l.Items) == 0 || delta == 0 {
		return false
	}
	old := l.Hover
	if l.Hover < 0 {
		if delta > 0 {
			l.Hover = menu.FirstSelectable(l.Items)
		} else {
			l.Hover = menu.LastSelectable(l.Items)
		}
		return l.Hover != old
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	idx := l.Hover
	for i := 0; i < delta; i++ {
		next := menu.NextSelectable(l.Items, idx, step)
		if next < 0 {
			break
		}
		idx = next
	}
	l.Hover = idx
	return l.Hover != old
}

// MoveHoverHome hovers the first selectable row.
func (l *Level) MoveHoverHome() bool {
	idx := menu.FirstSelectable(l.Items)
	if idx < 0 || idx == l.Hover {
		return false
	}
	l.Hover = idx
	return true
}

// MoveHoverEnd hovers the last selectable row.
func (l *Level) MoveHoverEnd() bool {
	idx := menu.LastSelectable(l.Items)
	if idx < 0 || idx == l.Hover {
		return false
	}
	l.Hover = idx
	return true
}

// ScrollBy shifts the scroll window without touching hover, clamping so the
// window stays over the list. maxVisible is the panel's row capacity.
func (l *Level) ScrollBy(delta, maxVisible int) bool {
	if len(l.Items) == 0 || maxVisible <= 0 || len(l.Items) <= maxVisible {
		return false
	}
	old := l.Scroll
	l.Scroll += delta
	maxScroll := len(l.Items) - maxVisible
	if l.Scroll > maxScroll {
		l.Scroll = maxScroll
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
	return l.Scroll != old
}

// EnsureHoverVisible adjusts the scroll window so the hovered row stays on
// screen. With nothing hovered only the window bounds are repaired.
func (l *Level) EnsureHoverVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Scroll = 0
		return
	}
	if maxVisible <= 0 {
		l.Scroll = 0
		return
	}
	maxScroll := len(l.Items) - maxVisible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if l.Scroll > maxScroll {
		l.Scroll = maxScroll
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
	if l.Hover < 0 {
		return
	}
	if l.Hover < l.Scroll {
		l.Scroll = l.Hover
	}
	upper := l.Scroll + maxVisible - 1
	if l.Hover > upper {
		l.Scroll = l.Hover - maxVisible + 1
		if l.Scroll < 0 {
			l.Scroll = 0
		}
		if l.Scroll > maxScroll {
			l.Scroll = maxScroll
		}
	}
}
