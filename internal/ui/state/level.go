package state

import (
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/mnemonic"
	"github.com/atomicstack/menubar/internal/overlay"
)

// Level holds the live state of one open menu panel: the entries it shows,
// the hovered row, the scroll window, the resolved overlay placement, and the
// lookup tables layout derives from the entries.
type Level struct {
	// Items is the entry snapshot for the current pass. The tree owner may
	// rebuild it between passes; UpdateItems reconciles hover and scroll.
	Items []*menu.Node
	// Hover is the hovered row index, -1 when nothing is hovered.
	Hover int
	// Scroll is the first visible row when the panel overflows its height.
	Scroll int
	// Placement carries the sticky overlay directions for this panel.
	Placement overlay.Placement
	// Keys resolves access keys against this level's entries.
	Keys *mnemonic.Table
	// ItemRects are the absolute row rectangles, cached by layout for
	// pointer hit-testing. Indexes mirror Items; separators included.
	ItemRects []overlay.Rect
	// Frame is the absolute panel rectangle including the border.
	Frame overlay.Rect

	typeAhead string
}

// NewLevel constructs a Level for the given entries with nothing hovered.
func NewLevel(items []*menu.Node) *Level {
	l := &Level{Hover: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems refreshes the entry snapshot after a tree rebuild. Hover is
// clamped into the new list and nudged off separators; the access-key table
// is rebuilt; the scroll window is pulled back into range.
func (l *Level) UpdateItems(items []*menu.Node) {
	l.Items = items
	l.Keys = menu.KeyTable(items)
	if len(items) == 0 {
		l.Hover = -1
		l.Scroll = 0
		l.ItemRects = nil
		return
	}
	if l.Hover >= len(items) {
		l.Hover = menu.LastSelectable(items)
	}
	if l.Hover >= 0 && !items[l.Hover].Selectable() {
		l.Hover = menu.NextSelectable(items, l.Hover, 1)
	}
	if l.Scroll > len(items)-1 {
		l.Scroll = 0
	}
	if len(l.ItemRects) != len(items) {
		l.ItemRects = nil
	}
}

// SetHover moves hover to index when that row can take it.
func (l *Level) SetHover(index int) bool {
	if index < 0 || index >= len(l.Items) || !l.Items[index].Selectable() {
		return false
	}
	if l.Hover == index {
		return false
	}
	l.Hover = index
	return true
}

// ClearHover removes the hover entirely.
func (l *Level) ClearHover() {
	l.Hover = -1
}

// HoveredItem returns the hovered entry, or nil when nothing is hovered.
func (l *Level) HoveredItem() *menu.Node {
	return l.ItemAt(l.Hover)
}

// ItemAt returns the entry at index, or nil when out of range.
func (l *Level) ItemAt(index int) *menu.Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

// HitTest resolves an absolute point to a row index using the cached
// rectangles, or -1 when the point misses every row.
func (l *Level) HitTest(p overlay.Point) int {
	for i, r := range l.ItemRects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}
