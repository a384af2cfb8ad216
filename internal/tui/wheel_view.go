package tui

import (
	"strings"

	"datewheel-cli/internal/wheel"

	"github.com/charmbracelet/lipgloss"
)

// renderWheel draws one wheel column: a header, the visible window and a
// border that is highlighted while the wheel has focus.
func renderWheel(title string, w *wheel.Wheel, label func(int) string, width int, focused bool) string {
	inner := width + 4 // markers plus padding
	lines := make([]string, 0, w.VisibleCount()+1)
	lines = append(lines, styleMuted().Render(fitCell(title, inner)))

	for _, row := range w.Window() {
		switch {
		case row.Blank:
			lines = append(lines, strings.Repeat(" ", inner))
		case row.Selected:
			cell := glyphMarkLeft() + " " + fitCell(label(row.Value), width) + " " + glyphMarkRight()
			lines = append(lines, styleSelected().Render(fitCell(cell, inner)))
		default:
			lines = append(lines, styleMuted().Render(fitCell(label(row.Value), inner)))
		}
	}

	border := colorWheelBorder
	if focused {
		border = colorFocusBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}
