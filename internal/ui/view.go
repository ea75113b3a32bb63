package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/menubar/internal/logging/events"
)

// View implements tea.Model. The base screen is the bar row, the application
// body, the status line, and the optional help footer; every open panel is
// spliced over it at its resolved placement.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.ensureLayout()
	rows := m.baseRows()
	for d, lvl := range m.levels {
		rows = splice(rows, m.renderPanel(d, lvl), lvl.Frame.X, lvl.Frame.Y)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) baseRows() []string {
	statusRows := m.statusRows()
	bodyHeight := m.height - barHeight - len(statusRows)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderBar())
	rows = append(rows, m.renderBody(bodyHeight)...)
	rows = append(rows, statusRows...)
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	for len(rows) < m.height {
		rows = append(rows, "")
	}
	return m.padRows(rows)
}

func (m *Model) renderBody(height int) []string {
	if height <= 0 {
		return nil
	}
	content := ""
	if m.app != nil {
		content = m.app.Body(m.width, height)
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func (m *Model) statusRows() []string {
	rows := []string{m.statusLine()}
	if m.showFooter {
		rows = append(rows, m.help.View(m.keys))
	}
	return rows
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg))
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return styles.Error.Render(fmt.Sprintf("Watch error: %s", msg))
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(info)
	}
	return ""
}

// padRows brings every row to exactly the terminal width so panel splicing
// always lands on a fully materialised cell grid.
func (m *Model) padRows(rows []string) []string {
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > m.width {
			rows[i] = truncate.StringWithTail(row, uint(m.width-1), "…")
		} else if w < m.width {
			rows[i] = row + strings.Repeat(" ", m.width-w)
		}
	}
	return rows
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.layoutDirty = true
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	events.App.Resize(m.width, m.height)
	return nil
}
