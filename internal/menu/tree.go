package menu

import "github.com/atomicstack/menubar/internal/mnemonic"

// Tree is an ordered forest of root entries. A path addresses a node by the
// index of each step: path[0] indexes the roots, every later element indexes
// the children of the node reached so far.
type Tree []*Node

// KeyTable builds the access-key lookup for one level's entries.
func KeyTable(items []*Node) *mnemonic.Table {
	keys := mnemonic.NewTable()
	for i, item := range items {
		if item.IsSeparator() {
			continue
		}
		keys.AddLabel(item.Label, i)
	}
	return keys
}

// At resolves a path to its node, or nil when any step is out of range.
func (t Tree) At(path []int) *Node {
	if len(path) == 0 {
		return nil
	}
	nodes := []*Node(t)
	var node *Node
	for _, idx := range path {
		if idx < 0 || idx >= len(nodes) {
			return nil
		}
		node = nodes[idx]
		nodes = node.Children
	}
	return node
}

// ItemsAt returns the entries shown by the level opened at the given path
// prefix. The empty prefix yields the roots themselves.
func (t Tree) ItemsAt(path []int) []*Node {
	if len(path) == 0 {
		return t
	}
	node := t.At(path)
	if node == nil {
		return nil
	}
	return node.Children
}

// ValidDepth returns the length of the longest path prefix whose every step
// still resolves to an openable entry, that is one with children. A reshaped
// tree can leave a previously open path dangling; callers close the first
// stale level and everything beneath it.
func (t Tree) ValidDepth(path []int) int {
	nodes := []*Node(t)
	for depth, idx := range path {
		if idx < 0 || idx >= len(nodes) {
			return depth
		}
		node := nodes[idx]
		if node.IsSeparator() || !node.HasChildren() {
			return depth
		}
		nodes = node.Children
	}
	return len(path)
}

// NextSelectable walks from index from by step (+1 or -1) through items,
// wrapping around and stepping over separators, and returns the index of the
// first selectable entry. It returns -1 when nothing is selectable.
func NextSelectable(items []*Node, from, step int) int {
	n := len(items)
	if n == 0 || step == 0 {
		return -1
	}
	idx := from
	for i := 0; i < n; i++ {
		idx = ((idx+step)%n + n) % n
		if items[idx].Selectable() {
			return idx
		}
	}
	return -1
}

// FirstSelectable returns the lowest selectable index, or -1.
func FirstSelectable(items []*Node) int {
	for i, item := range items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}

// LastSelectable returns the highest selectable index, or -1.
func LastSelectable(items []*Node) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Selectable() {
			return i
		}
	}
	return -1
}
