package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/mnemonic"
)

// Node is one entry in a menu tree: a leaf that emits a message when
// activated, a parent holding child entries, or a separator rule.
type Node struct {
	// Label is the raw label text. An ampersand marks the following rune as
	// the entry's access key; a doubled ampersand renders literally.
	Label string
	// Message is delivered to the application verbatim when the entry is
	// activated. Parents and separators carry none.
	Message tea.Msg
	// Shortcut is a display-only accelerator hint, right-aligned in the
	// panel. The menu never interprets it.
	Shortcut string
	Disabled bool
	Children []*Node
	// Content optionally replaces the label rendering for this entry.
	Content Content

	separator bool
}

// Item returns a leaf entry that emits msg when activated.
func Item(label string, msg tea.Msg) *Node {
	return &Node{Label: label, Message: msg}
}

// Submenu returns a parent entry holding the given children.
func Submenu(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Separator returns a horizontal rule entry. Separators cannot be hovered,
// activated, or matched by access key.
func Separator() *Node {
	return &Node{separator: true}
}

// WithShortcut sets the display-only accelerator column text.
func (n *Node) WithShortcut(shortcut string) *Node {
	n.Shortcut = shortcut
	return n
}

// WithDisabled marks the entry unavailable. Disabled entries render dimmed
// and ignore activation, but still take part in hover.
func (n *Node) WithDisabled(disabled bool) *Node {
	n.Disabled = disabled
	return n
}

// WithContent replaces the entry's label rendering.
func (n *Node) WithContent(c Content) *Node {
	n.Content = c
	return n
}

func (n *Node) IsSeparator() bool {
	return n != nil && n.separator
}

func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// Selectable reports whether hover may rest on this entry.
func (n *Node) Selectable() bool {
	return n != nil && !n.separator
}

// Mnemonic parses the label's access-key marker.
func (n *Node) Mnemonic() mnemonic.Parsed {
	if n == nil {
		return mnemonic.Parse("")
	}
	return mnemonic.Parse(n.Label)
}

// Title is the label with access-key markers stripped.
func (n *Node) Title() string {
	return n.Mnemonic().Text
}
