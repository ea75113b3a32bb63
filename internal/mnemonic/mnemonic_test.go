package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		label string
		text  string
		key   rune
		index int
	}{
		{name: "plain label", label: "Open", text: "Open", key: 0, index: -1},
		{name: "leading key", label: "&File", text: "File", key: 'f', index: 0},
		{name: "inner key", label: "Save &As", text: "Save As", key: 'a', index: 5},
		{name: "literal ampersand", label: "Fish && Chips", text: "Fish & Chips", key: 0, index: -1},
		{name: "literal then key", label: "Fish && &Chips", text: "Fish & Chips", key: 'c', index: 7},
		{name: "first marker wins", label: "&New &Window", text: "New Window", key: 'n', index: 0},
		{name: "trailing marker dropped", label: "Oops&", text: "Oops", key: 0, index: -1},
		{name: "only markers", label: "&&", text: "&", key: 0, index: -1},
		{name: "upper case folds", label: "E&Xit", text: "EXit", key: 'x', index: 1},
		{name: "multibyte label", label: "Préf&érences", text: "Préférences", key: 'é', index: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Parse(tc.label)
			require.Equal(t, tc.text, p.Text)
			require.Equal(t, tc.key, p.Key)
			require.Equal(t, tc.index, p.Index)
		})
	}
}

func TestParsedMatches(t *testing.T) {
	p := Parse("Save &As")
	require.True(t, p.Matches('a'))
	require.True(t, p.Matches('A'))
	require.False(t, p.Matches('s'))
	require.False(t, Parse("Open").Matches('o'))
}

func TestTableLowestIndexWins(t *testing.T) {
	table := NewTable()
	table.AddLabel("Copy", 0)
	table.AddLabel("&New File", 2)
	table.AddLabel("Paste", 3)
	table.AddLabel("&New Window", 5)

	// The same key resolves to the lowest index no matter how often it is
	// asked, and regardless of registration order elsewhere.
	for i := 0; i < 4; i++ {
		index, ok := table.Lookup('n')
		require.True(t, ok)
		require.Equal(t, 2, index)
	}
	index, ok := table.Lookup('N')
	require.True(t, ok)
	require.Equal(t, 2, index)
}

func TestTableRegistrationOrderDoesNotMatter(t *testing.T) {
	table := NewTable()
	table.Add('n', 5)
	table.Add('n', 2)
	table.Add('n', 4)

	index, ok := table.Lookup('n')
	require.True(t, ok)
	require.Equal(t, 2, index)
	require.Equal(t, 1, table.Len())
}

func TestTableMisses(t *testing.T) {
	table := NewTable()
	table.AddLabel("&File", 0)

	_, ok := table.Lookup('q')
	require.False(t, ok)

	var nilTable *Table
	_, ok = nilTable.Lookup('f')
	require.False(t, ok)
	require.Equal(t, 0, nilTable.Len())
}
