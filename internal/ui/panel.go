package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/menubar/internal/format/table"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/theme"
)

const (
	submenuMarker    = "▶"
	scrollUpMarker   = "▲"
	scrollDownMarker = "▼"
	truncationTail   = "…"
)

// panelRowTexts lays the entries out in two aligned columns, label on the
// left and shortcut or submenu marker on the right. Separators contribute an
// empty row here and are drawn as rules at render time.
func panelRowTexts(items []*menu.Node) []string {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]string, len(items))
	for i, node := range items {
		if node == nil || node.IsSeparator() {
			rows[i] = []string{"", ""}
			continue
		}
		trailing := node.Shortcut
		if node.HasChildren() {
			trailing = submenuMarker
		}
		label := node.Title()
		if node.Content != nil {
			// Custom content is measured here and drawn at render time;
			// the placeholder keeps the column math honest.
			label = strings.Repeat(" ", node.Content.Width())
		}
		rows[i] = []string{label, trailing}
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

func trailingWidth(items []*menu.Node) int {
	width := 0
	for _, node := range items {
		if node == nil || node.IsSeparator() {
			continue
		}
		t := node.Shortcut
		if node.HasChildren() {
			t = submenuMarker
		}
		if w := ansi.StringWidth(t); w > width {
			width = w
		}
	}
	return width
}

// renderBar draws the root row across the full terminal width.
func (m *Model) renderBar() string {
	var b strings.Builder
	open := len(m.path) > 0
	for i, node := range m.tree {
		state := theme.ItemState{
			Bar:       true,
			Open:      open && m.path[0] == i,
			Hovered:   m.barHover == i,
			Disabled:  node.Disabled,
			Separator: node.IsSeparator(),
		}
		style := m.styleHook(styles, state)
		b.WriteString(m.renderBarItem(style, node))
	}
	row := b.String()
	if fill := m.width - ansi.StringWidth(row); fill > 0 {
		row += styles.Bar.Render(strings.Repeat(" ", fill))
	}
	return row
}

// renderBarItem pads the root label by hand so the drawn cells always match
// the rectangles hit-testing uses, whatever padding the hook's style claims.
func (m *Model) renderBarItem(style lipgloss.Style, node *menu.Node) string {
	base := style.Inline(true)
	title := node.Title()
	mn := node.Mnemonic()
	runes := []rune(title)
	if !m.showMnemonics() || !mn.HasKey() || mn.Index < 0 || mn.Index >= len(runes) {
		return base.Render(" " + title + " ")
	}
	pre := string(runes[:mn.Index])
	ch := string(runes[mn.Index])
	post := string(runes[mn.Index+1:])
	return base.Render(" "+pre) + base.Underline(true).Render(ch) + base.Render(post+" ")
}

// renderPanel draws one open level as frame-bordered lines sized to its
// resolved placement. Scroll markers take the place of the border centers.
func (m *Model) renderPanel(depth int, lvl *level) []string {
	frame := lvl.Frame
	inner := frame.Width - frameColumns
	if inner < 0 {
		inner = 0
	}
	rowBudget := frame.Height - frameRows
	if rowBudget < 0 {
		rowBudget = 0
	}
	body := panelRowTexts(lvl.Items)
	contentWidth := inner - itemPadding
	if contentWidth < 0 {
		contentWidth = 0
	}
	trailW := trailingWidth(lvl.Items)

	lines := make([]string, 0, frame.Height)
	lines = append(lines, renderPanelEdge("╭", "╮", inner, lvl.Scroll > 0, scrollUpMarker))
	last := lvl.Scroll + rowBudget
	for i := lvl.Scroll; i < len(lvl.Items) && i < last; i++ {
		lines = append(lines, m.renderPanelRow(depth, lvl, i, body[i], contentWidth, inner, trailW))
	}
	for len(lines) < frame.Height-1 {
		lines = append(lines, styles.Panel.Render("│"+strings.Repeat(" ", inner)+"│"))
	}
	lines = append(lines, renderPanelEdge("╰", "╯", inner, last < len(lvl.Items), scrollDownMarker))
	return lines
}

func renderPanelEdge(left, right string, inner int, marked bool, marker string) string {
	if !marked || inner < 1 {
		return styles.Panel.Render(left + strings.Repeat("─", inner) + right)
	}
	mid := inner / 2
	return styles.Panel.Render(left+strings.Repeat("─", mid)) +
		styles.ScrollMarker.Render(marker) +
		styles.Panel.Render(strings.Repeat("─", inner-mid-1)+right)
}

func (m *Model) renderPanelRow(depth int, lvl *level, index int, body string, contentWidth, inner, trailW int) string {
	node := lvl.Items[index]
	if node == nil || node.IsSeparator() {
		rule := strings.Repeat("─", inner)
		return styles.Panel.Render("├") + styles.Separator.Render(rule) + styles.Panel.Render("┤")
	}
	state := theme.ItemState{
		Open:     len(m.path) > depth+1 && m.path[depth+1] == index,
		Hovered:  lvl.Hover == index,
		Disabled: node.Disabled,
		Depth:    depth,
	}
	style := m.styleHook(styles, state).Inline(true)
	text := body
	if w := ansi.StringWidth(text); w > contentWidth {
		text = ansi.Truncate(text, contentWidth, truncationTail)
	} else if w < contentWidth {
		text += strings.Repeat(" ", contentWidth-w)
	}
	emphasized := state.Hovered || state.Open || state.Disabled
	border := styles.Panel.Render("│")
	return border + m.renderRowContent(style, node, text, trailW, emphasized) + border
}

// renderRowContent styles one row's padded text: the mnemonic rune gets an
// underline, and the trailing column keeps its subdued color on rows that
// are not highlighted.
func (m *Model) renderRowContent(style lipgloss.Style, node *menu.Node, text string, trailW int, emphasized bool) string {
	runes := []rune(text)
	lead := text
	tail := ""
	if trailW > 0 && len(runes) >= trailW {
		lead = string(runes[:len(runes)-trailW])
		tail = string(runes[len(runes)-trailW:])
	}

	var b strings.Builder
	leadRunes := []rune(lead)
	if c := node.Content; c != nil && c.Width() <= len(leadRunes) {
		b.WriteString(style.Render(" "))
		b.WriteString(c.Render(style))
		b.WriteString(style.Render(string(leadRunes[c.Width():])))
		return m.renderRowTail(&b, style, node, tail, emphasized)
	}
	mn := node.Mnemonic()
	if m.showMnemonics() && mn.HasKey() && mn.Index >= 0 && mn.Index < len(leadRunes) {
		b.WriteString(style.Render(" " + string(leadRunes[:mn.Index])))
		b.WriteString(style.Underline(true).Render(string(leadRunes[mn.Index])))
		b.WriteString(style.Render(string(leadRunes[mn.Index+1:])))
	} else {
		b.WriteString(style.Render(" " + lead))
	}
	return m.renderRowTail(&b, style, node, tail, emphasized)
}

func (m *Model) renderRowTail(b *strings.Builder, style lipgloss.Style, node *menu.Node, tail string, emphasized bool) string {
	if tail != "" {
		tailStyle := style
		if !emphasized && strings.TrimSpace(tail) != "" {
			if node.HasChildren() {
				tailStyle = styles.Submarker.Inline(true)
			} else {
				tailStyle = styles.Shortcut.Inline(true)
			}
		}
		b.WriteString(tailStyle.Render(tail))
	}
	b.WriteString(style.Render(" "))
	return b.String()
}
