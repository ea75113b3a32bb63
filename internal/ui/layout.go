package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/overlay"
)

const (
	barHeight    = 1
	frameRows    = 2
	frameColumns = 2
	itemPadding  = 2
)

// maxVisibleItems caps how many rows a panel may show before it scrolls.
func (m *Model) maxVisibleItems() int {
	budget := m.height - barHeight - frameRows
	if budget < 1 {
		budget = 1
	}
	return budget
}

// ensureLayout recomputes bar geometry, panel placements, and the cached row
// rectangles. Pointer handling and the view both call it; the dirty flag
// keeps the recompute off the hot path when nothing structural changed.
func (m *Model) ensureLayout() {
	if !m.layoutDirty && m.barRects != nil {
		return
	}
	m.layoutBar()
	m.layoutLevels()
	m.layoutDirty = false
}

func (m *Model) layoutBar() {
	rects := make([]overlay.Rect, len(m.tree))
	x := 0
	for i, node := range m.tree {
		w := ansi.StringWidth(node.Title()) + itemPadding
		rects[i] = overlay.Rect{X: x, Y: 0, Width: w, Height: barHeight}
		x += w
	}
	m.barRects = rects
}

func (m *Model) layoutLevels() {
	viewport := overlay.Rect{X: 0, Y: 0, Width: m.width, Height: m.height}
	for d, lvl := range m.levels {
		kind := overlay.Flyout
		var anchor overlay.Rect
		if d == 0 {
			kind = overlay.Dropdown
			anchor = m.barAnchor(m.path[0])
		} else {
			anchor = m.itemAnchor(d-1, m.path[d])
		}
		size := m.measureLevel(lvl)
		lvl.Placement = lvl.Placement.Resolve(kind, anchor, size, viewport)
		lvl.Frame = lvl.Placement.Bounds
		m.layoutRows(lvl)
		events.Overlay.Place(d, kind.String(),
			lvl.Placement.Horizontal.String(), lvl.Placement.Vertical.String(),
			lvl.Frame.X, lvl.Frame.Y, lvl.Frame.Width, lvl.Frame.Height)
	}
}

func (m *Model) barAnchor(index int) overlay.Rect {
	if index >= 0 && index < len(m.barRects) {
		return m.barRects[index]
	}
	return overlay.Rect{X: 0, Y: 0, Width: 1, Height: barHeight}
}

// itemAnchor returns the parent row a flyout hangs off. A row scrolled out
// of view has no rectangle; the parent frame stands in so the child still
// lands somewhere sensible.
func (m *Model) itemAnchor(depth, index int) overlay.Rect {
	lvl := m.levels[depth]
	if index >= 0 && index < len(lvl.ItemRects) {
		if r := lvl.ItemRects[index]; !r.Empty() {
			return r
		}
	}
	return lvl.Frame
}

// measureLevel computes the preferred panel size: the widest formatted row
// plus padding and frame, by as many rows as fit the scroll budget.
func (m *Model) measureLevel(lvl *level) overlay.Size {
	rows := panelRowTexts(lvl.Items)
	width := 0
	for _, row := range rows {
		if w := ansi.StringWidth(row); w > width {
			width = w
		}
	}
	height := len(rows)
	if max := m.maxVisibleItems(); height > max {
		height = max
	}
	if height < 1 {
		height = 1
	}
	return overlay.Size{
		Width:  width + itemPadding + frameColumns,
		Height: height + frameRows,
	}
}

// layoutRows fills the absolute row rectangles for the visible scroll
// window. Rows outside the window keep a zero Rect and never hit-test.
func (m *Model) layoutRows(lvl *level) {
	inner := lvl.Frame.Height - frameRows
	if inner < 0 {
		inner = 0
	}
	maxScroll := len(lvl.Items) - inner
	if maxScroll < 0 {
		maxScroll = 0
	}
	if lvl.Scroll > maxScroll {
		lvl.Scroll = maxScroll
	}
	if lvl.Scroll < 0 {
		lvl.Scroll = 0
	}
	rects := make([]overlay.Rect, len(lvl.Items))
	for i := range lvl.Items {
		if i < lvl.Scroll || i >= lvl.Scroll+inner {
			continue
		}
		rects[i] = overlay.Rect{
			X:      lvl.Frame.X + 1,
			Y:      lvl.Frame.Y + 1 + (i - lvl.Scroll),
			Width:  lvl.Frame.Width - frameColumns,
			Height: 1,
		}
	}
	lvl.ItemRects = rects
}
