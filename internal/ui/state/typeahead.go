package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/menubar/internal/menu"
)

// AppendTypeAhead extends the pending type-ahead query with r and jumps the
// hover to the best matching row. When the grown query stops matching, the
// query restarts from r alone; when even that misses, the query clears and
// the hover stays put. Type-ahead never activates anything.
func (l *Level) AppendTypeAhead(r rune) bool {
	query := l.typeAhead + string(r)
	idx := BestMatchIndex(l.Items, query)
	if idx < 0 {
		query = string(r)
		idx = BestMatchIndex(l.Items, query)
	}
	if idx < 0 {
		l.typeAhead = ""
		return false
	}
	l.typeAhead = query
	l.Hover = idx
	return true
}

// ClearTypeAhead forgets the pending query. Navigation keys call this so a
// later rune starts a fresh search.
func (l *Level) ClearTypeAhead() {
	l.typeAhead = ""
}

// TypeAheadQuery exposes the pending query, mostly for tracing.
func (l *Level) TypeAheadQuery() string {
	return l.typeAhead
}

// BestMatchIndex returns the row whose title best matches the query, or -1
// when nothing matches. Exact title matches win, then title prefixes, then
// substrings, then the closest fuzzy rank. Separators never match.
func BestMatchIndex(items []*menu.Node, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if item.Selectable() && strings.EqualFold(item.Title(), trimmed) {
			return i
		}
	}
	for i, item := range items {
		if item.Selectable() && strings.HasPrefix(strings.ToLower(item.Title()), lower) {
			return i
		}
	}
	for i, item := range items {
		if item.Selectable() && strings.Contains(strings.ToLower(item.Title()), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		if item.Selectable() {
			labels[i] = item.Title()
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}
