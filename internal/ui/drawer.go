package ui

import (
	"strings"

	"spyglass/internal/docview"
)

// renderDrawer renders the right-hand document inspector for the
// selected result, with query-token highlighting.
func (m Model) renderDrawer(width, height int) string {
	styles := m.theme.Styles()
	inner := width - paneBorderCells
	maxLines := height - paneBorderCells
	if maxLines < 1 {
		maxLines = 1
	}

	var lines []docview.Line
	if doc, ok := m.state.Browser.Selected(); ok {
		lines = docview.DrawerLines(doc.ID, doc.Source, m.viewMode, m.state.Browser.Query(), maxLines)
	} else {
		lines = docview.NoDocumentLines()
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderSegments(line, inner, styles))
	}
	return m.pane(strings.Join(rendered, "\n"), width, height, false)
}

// renderSegments styles a line's segments, truncating on plain text so
// the width math never sees escape sequences.
func renderSegments(line docview.Line, width int, styles Styles) string {
	var b strings.Builder
	remaining := width
	for _, seg := range line.Segments {
		if remaining <= 0 {
			break
		}
		text := truncate(seg.Text, remaining)
		remaining -= displayWidth(text)
		if seg.Match {
			b.WriteString(styles.MatchText.Render(text))
		} else {
			b.WriteString(styles.Text.Render(text))
		}
	}
	return b.String()
}
