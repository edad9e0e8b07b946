package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of view with overlay, placed
// with its top-left corner at (x, y). Escape sequences on both sides of the
// overlay are preserved. The view grows with blank lines when the overlay
// extends past its bottom.
func spliceOverlay(view string, overlay []string, x, y int) string {
	if len(overlay) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	for len(viewLines) < y+len(overlay) {
		viewLines = append(viewLines, "")
	}

	for i, overlayLine := range overlay {
		row := y + i
		if row < 0 {
			continue
		}

		viewLine := viewLines[row]
		viewWidth := ansi.StringWidth(viewLine)

		var b strings.Builder
		if x > 0 {
			prefix := ansi.Truncate(viewLine, x, "")
			b.WriteString(prefix)
			if pad := x - ansi.StringWidth(prefix); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(overlayLine)
		b.WriteString("\x1b[0m")

		if end := x + ansi.StringWidth(overlayLine); end < viewWidth {
			b.WriteString(ansi.TruncateLeft(viewLine, end, ""))
		}

		viewLines[row] = b.String()
	}

	return strings.Join(viewLines, "\n")
}
