package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given display width, adding an
// ellipsis if needed. Width is measured in terminal cells so wide runes
// count double.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// fit truncates then pads, producing a cell of exactly the given width.
func fit(s string, width int) string {
	return padRight(truncate(s, width), width)
}

// displayWidth measures a string in terminal cells.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// clampInt bounds v to the inclusive range [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
