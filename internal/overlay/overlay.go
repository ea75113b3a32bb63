package overlay

// Kind selects the placement rule for a floating panel.
type Kind int

const (
	// Dropdown hangs a root panel off a menu-bar entry. It grows along the
	// vertical axis only; the horizontal position is pinned to the anchor's
	// left edge and merely clamped into the viewport.
	Dropdown Kind = iota
	// Flyout opens a nested panel beside its parent item, growing from the
	// anchor's trailing edge and top-aligned with the anchor row.
	Flyout
)

func (k Kind) String() string {
	if k == Flyout {
		return "flyout"
	}
	return "dropdown"
}

// Placement is the resolved position of one floating panel. The chosen
// directions are sticky: Resolve keeps them while the anchor and viewport are
// unchanged, so a panel whose measured size oscillates near a viewport edge
// cannot flip between repaints.
type Placement struct {
	Bounds     Rect
	Horizontal Direction
	Vertical   Direction

	kind     Kind
	anchor   Rect
	viewport Rect
	valid    bool
}

// Place computes a fresh placement for a panel of the given preferred size.
// Per axis the default direction is used when the panel fits; otherwise the
// axis flips when the flipped position fits, and clamps to the viewport edge
// when neither does.
func Place(kind Kind, anchor Rect, size Size, viewport Rect) Placement {
	p := Placement{kind: kind, anchor: anchor, viewport: viewport, valid: true}
	switch kind {
	case Flyout:
		p.Horizontal = flyoutHorizontal(anchor, size.Width, viewport)
		p.Vertical = flyoutVertical(anchor, size.Height, viewport)
	default:
		p.Horizontal = Positive
		p.Vertical = dropdownVertical(anchor, size.Height, viewport)
	}
	p.Bounds = p.place(size)
	return p
}

// Resolve re-places the panel for a possibly changed preferred size. The
// previously chosen directions are reused unless the anchor rectangle or the
// viewport actually changed, in which case the placement is recomputed from
// scratch.
func (p Placement) Resolve(kind Kind, anchor Rect, size Size, viewport Rect) Placement {
	if !p.valid || p.kind != kind || p.anchor != anchor || p.viewport != viewport {
		return Place(kind, anchor, size, viewport)
	}
	p.Bounds = p.place(size)
	return p
}

// Valid reports whether the placement has been resolved at least once.
func (p Placement) Valid() bool {
	return p.valid
}

// place positions a panel of the given size using the already chosen
// directions, clamping the result into the viewport.
func (p Placement) place(size Size) Rect {
	w := minInt(size.Width, p.viewport.Width)
	h := minInt(size.Height, p.viewport.Height)

	var x, y int
	switch p.kind {
	case Flyout:
		if p.Horizontal == Positive {
			x = p.anchor.Right()
		} else {
			x = p.anchor.X - w
		}
		if p.Vertical == Positive {
			y = p.anchor.Y
		} else {
			y = p.anchor.Bottom() - h
		}
	default:
		x = p.anchor.X
		if p.Vertical == Positive {
			y = p.anchor.Bottom()
		} else {
			y = p.anchor.Y - h
		}
	}
	x = clampInt(x, p.viewport.X, p.viewport.Right()-w)
	y = clampInt(y, p.viewport.Y, p.viewport.Bottom()-h)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func dropdownVertical(anchor Rect, height int, viewport Rect) Direction {
	if anchor.Bottom()+height <= viewport.Bottom() {
		return Positive
	}
	if anchor.Y-height >= viewport.Y {
		return Negative
	}
	// Neither side fits; stay with the default and let place() clamp.
	return Positive
}

func flyoutHorizontal(anchor Rect, width int, viewport Rect) Direction {
	if anchor.Right()+width <= viewport.Right() {
		return Positive
	}
	if anchor.X-width >= viewport.X {
		return Negative
	}
	return Positive
}

func flyoutVertical(anchor Rect, height int, viewport Rect) Direction {
	if anchor.Y+height <= viewport.Bottom() {
		return Positive
	}
	if anchor.Bottom()-height >= viewport.Y {
		return Negative
	}
	return Positive
}
