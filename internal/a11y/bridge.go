// Package a11y tracks a screen-reader focus cursor over a menu bar's root
// entries. The cursor is announce-only: moving it opens nothing and leaves
// pointer and keyboard hover untouched, so assistive technology can inspect
// a closed bar without disturbing it.
package a11y

import (
	"fmt"

	"github.com/atomicstack/menubar/internal/logging/events"
)

// Surface is the slice of the menu bar the bridge may see and drive.
// ActivateRoot must be the bar's regular open entry point; the bridge never
// mutates menu state itself, so assistive activation cannot diverge from
// what a click does.
type Surface interface {
	RootCount() int
	RootLabel(index int) string
	ActivateRoot(index int)
}

// Bridge keeps the focus index and builds announce strings.
type Bridge struct {
	surface Surface
	focused int
}

func New(surface Surface) *Bridge {
	return &Bridge{surface: surface, focused: -1}
}

// Focused returns the focused root index, -1 when none.
func (b *Bridge) Focused() int {
	return b.focused
}

// FocusNext moves the cursor to the next root entry, wrapping, and returns
// the announce text.
func (b *Bridge) FocusNext() string {
	return b.move(1)
}

// FocusPrev moves the cursor to the previous root entry, wrapping.
func (b *Bridge) FocusPrev() string {
	return b.move(-1)
}

func (b *Bridge) move(step int) string {
	n := b.surface.RootCount()
	if n == 0 {
		b.focused = -1
		return ""
	}
	if b.focused < 0 {
		if step >= 0 {
			b.focused = 0
		} else {
			b.focused = n - 1
		}
	} else {
		b.focused = ((b.focused+step)%n + n) % n
	}
	events.A11y.Focus(b.focused, b.surface.RootLabel(b.focused))
	return b.Announce()
}

// Announce builds the screen-reader text for the focused entry.
func (b *Bridge) Announce() string {
	n := b.surface.RootCount()
	if b.focused < 0 || b.focused >= n {
		return ""
	}
	text := fmt.Sprintf("%s menu, %d of %d", b.surface.RootLabel(b.focused), b.focused+1, n)
	events.A11y.Announce(text)
	return text
}

// Activate opens the focused entry through the surface's own open path.
func (b *Bridge) Activate() bool {
	if b.focused < 0 || b.focused >= b.surface.RootCount() {
		return false
	}
	events.A11y.Activate(b.focused)
	b.surface.ActivateRoot(b.focused)
	return true
}

// Reset drops the focus cursor, for when the tree is rebuilt underneath it.
func (b *Bridge) Reset() {
	b.focused = -1
}
