// Package util provides shared string helpers for terminal output.
package util

import "github.com/charmbracelet/x/ansi"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Truncate shortens s to at most width terminal cells, ending with Ellipsis
// when anything was cut. Escape sequences are kept and do not count toward
// the width; wide characters count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}
