package docview

// Drawer header line positions, used by the UI to style the fixed lines.
const (
	LineID = iota
	LineViewMode
	LineActions
	LineBlank
	headerLines
)

const actionHints = "Actions: include  exclude  copy  search"

// DrawerLines assembles the detail drawer for one document: a fixed header
// (ID, view-mode indicator, action hints, blank separator) followed by body
// lines under maxLines. When the body overflows, the last emitted line is
// replaced by a truncation sentinel instead of dropping content silently.
func DrawerLines(id string, source any, mode Mode, query string, maxLines int) []Line {
	header := []Line{
		plainLine("ID: " + id),
		plainLine("View: " + modeIndicator(mode)),
		plainLine(actionHints),
		plainLine(""),
	}
	if maxLines > 0 && len(header) >= maxLines {
		return header[:maxLines]
	}

	lines := header
	token := HighlightToken(query)
	truncated := false
	for _, text := range BodyLines(source, mode) {
		if maxLines > 0 && len(lines) >= maxLines {
			truncated = true
			break
		}
		lines = append(lines, HighlightLine(text, token))
	}
	if truncated && maxLines > 0 {
		lines = lines[:maxLines]
		lines[len(lines)-1] = plainLine(truncationSentinel)
	}
	return lines
}

// NoDocumentLines is the drawer content when nothing is selected.
func NoDocumentLines() []Line {
	return []Line{plainLine("No document selected")}
}

func modeIndicator(mode Mode) string {
	return ModePretty.Title() + " | " + ModeRaw.Title() + " | " + ModeFlatten.Title() + "  [" + mode.Title() + "]"
}
