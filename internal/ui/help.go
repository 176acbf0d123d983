package ui

import (
	"strings"
)

// renderFooter renders the command hints bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	type hint struct{ key, desc string }
	var hints []hint
	switch m.inputMode {
	case ModeEditingQuery:
		hints = []hint{
			{"Enter", "Run"},
			{"Esc", "Cancel"},
		}
	case ModeEditingFilter:
		hints = []hint{
			{"Enter", "Apply"},
			{"Esc", "Clear"},
		}
	default:
		hints = []hint{
			{"1-3", "Scope"},
			{"/", "Query"},
			{"^f", "Filter"},
			{"Tab", "Focus"},
			{"Enter", "Open"},
			{"n/p", "Page"},
			{"v", "View"},
			{"r", "Refresh"},
			{"h", "Help"},
			{"q", "Quit"},
		}
	}

	segments := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		segments = append(segments,
			styles.AccentText.Render(h.key)+styles.MutedText.Render(":"+h.desc))
	}
	segments = append(segments,
		styles.AccentText.Render("T")+styles.MutedText.Render(":"+m.theme.Name))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderHelp renders the full-screen key reference.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Scopes", [][2]string{
			{"1 / 2 / 3", "Indices / Aliases / Data streams"},
			{"up/down, j/k", "Move selection"},
			{"ctrl+f", "Edit name filter (Esc clears it)"},
			{"tab", "Switch focus between panes"},
		}},
		{"Documents", [][2]string{
			{"/ or ?", "Edit the query string"},
			{"enter / o", "Open or close the document drawer"},
			{"n / p", "Next / previous page"},
			{"v", "Cycle Pretty / Raw / Flatten"},
			{"d", "Refetch the current page"},
			{"esc", "Close the drawer"},
		}},
		{"General", [][2]string{
			{"r", "Refresh everything now"},
			{"T", "Cycle theme"},
			{"h", "Toggle this help"},
			{"q, ctrl+c", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("spyglass keys"))
	b.WriteString("\n\n")
	for _, sec := range sections {
		b.WriteString(styles.AccentText.Render(sec.title))
		b.WriteString("\n")
		for _, kv := range sec.keys {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(padRight(kv[0], 14)))
			b.WriteString(styles.MutedText.Render(kv[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render("Press h or Esc to return"))
	return b.String()
}
