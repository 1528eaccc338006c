// Package textutil provides width-aware text helpers for line-oriented terminal output.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TabWidth is the distance between the tab stops terminals default to.
const TabWidth = 8

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// ANSI escape sequences (for example lipgloss styling) take no columns.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Advance returns the cursor column after writing s (which must not contain
// newlines) starting at column col on a terminal cols wide, and how many
// times the cursor moved to a new row because the text wrapped.
//
// Tabs move to the next TabWidth stop but stop at the last column. Wrapping
// is deferred until a character is written past the last column, so a line
// of exactly cols columns does not wrap. cols <= 0 means the width is
// unknown and nothing wraps.
func Advance(col int, s string, cols int) (end, wraps int) {
	for i, part := range strings.Split(s, "\t") {
		if i > 0 {
			next := (col/TabWidth + 1) * TabWidth
			if cols > 0 && next > cols-1 {
				next = max(cols-1, col)
			}
			col = next
		}
		col += VisualWidth(part)
		for cols > 0 && col > cols {
			wraps++
			col -= cols
		}
	}
	return col, wraps
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, TruncateEllipsis)
}

// Lines splits s on newlines. A trailing newline does not produce an empty
// final element.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
