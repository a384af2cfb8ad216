package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitCell forces s to exactly width columns (ANSI-aware), centering short text
// and cutting long text with an ellipsis.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			return xansi.Cut(s, 0, 1)
		}
		return xansi.Cut(s, 0, width-1) + "…"
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// maxWidth is the widest of labels in terminal columns.
func maxWidth(labels []string) int {
	out := 0
	for _, l := range labels {
		if w := xansi.StringWidth(l); w > out {
			out = w
		}
	}
	return out
}
