// Package mnemonic extracts keyboard access keys from menu labels and
// resolves key presses against the items of one open menu level.
//
// A label marks its access key with an ampersand before the key rune, so
// "Save &As" exposes 'a'. A doubled ampersand renders a literal one and names
// no key. Only the first marker in a label counts; a marker with nothing
// after it degrades to "no mnemonic" rather than an error.
package mnemonic

import (
	"strings"
	"unicode"
)

// Marker introduces an access key inside a label.
const Marker = '&'

// Parsed is the display form of a label after marker extraction.
type Parsed struct {
	// Text is the label with markers stripped and doubled markers collapsed.
	Text string
	// Key is the access key folded to lower case, or 0 when the label has none.
	Key rune
	// Index is the rune offset of the access key within Text, or -1.
	Index int
}

// Parse splits a label into its display text and access key.
func Parse(label string) Parsed {
	p := Parsed{Index: -1}
	if !strings.ContainsRune(label, Marker) {
		p.Text = label
		return p
	}

	runes := []rune(label)
	var out strings.Builder
	out.Grow(len(label))
	written := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != Marker {
			out.WriteRune(r)
			written++
			continue
		}
		if i+1 >= len(runes) {
			// Trailing marker names nothing; drop it.
			break
		}
		next := runes[i+1]
		i++
		if next != Marker && p.Index < 0 {
			p.Index = written
			p.Key = unicode.ToLower(next)
		}
		out.WriteRune(next)
		written++
	}
	p.Text = out.String()
	return p
}

// HasKey reports whether the label carried a usable access key.
func (p Parsed) HasKey() bool {
	return p.Index >= 0
}

// Matches reports whether r presses this label's access key. Matching is
// case-insensitive.
func (p Parsed) Matches(r rune) bool {
	return p.HasKey() && unicode.ToLower(r) == p.Key
}

// Table resolves access keys to item indices for the items of one level.
// When two siblings claim the same key the lowest index wins, and repeated
// lookups keep returning it.
type Table struct {
	entries map[rune]int
}

// NewTable returns an empty lookup table.
func NewTable() *Table {
	return &Table{entries: make(map[rune]int)}
}

// Add registers the access key of the item at the given index. Keys already
// claimed by a lower index are left alone.
func (t *Table) Add(key rune, index int) {
	if key == 0 {
		return
	}
	key = unicode.ToLower(key)
	if prev, ok := t.entries[key]; ok && prev <= index {
		return
	}
	t.entries[key] = index
}

// AddLabel parses the label and registers its access key, if any.
func (t *Table) AddLabel(label string, index int) {
	if p := Parse(label); p.HasKey() {
		t.Add(p.Key, index)
	}
}

// Lookup resolves a pressed rune to an item index.
func (t *Table) Lookup(key rune) (int, bool) {
	if t == nil || len(t.entries) == 0 {
		return 0, false
	}
	index, ok := t.entries[unicode.ToLower(key)]
	return index, ok
}

// Len reports how many distinct access keys the table holds.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
