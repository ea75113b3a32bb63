package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// splice lays a panel's lines over the base screen rows at the given origin.
// Rows outside the base are dropped. Covered cells are replaced while the
// styling on either side survives, so panels float over styled content.
func splice(base []string, lines []string, x, y int) []string {
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(base) {
			continue
		}
		base[row] = spliceRow(base[row], line, x)
	}
	return base
}

func spliceRow(base, overlayRow string, x int) string {
	if x < 0 {
		x = 0
	}
	width := ansi.StringWidth(overlayRow)
	if width == 0 {
		return base
	}
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+width, "")
	return left + overlayRow + right
}
