package ui

import (
	"fmt"
	"strings"

	"spyglass/internal/scope"
)

// renderNav renders the left pane: scope tabs, the filter line, the
// filtered entry list, and the favorites / saved views placeholders.
func (m Model) renderNav(width, height int) string {
	inner := width - paneBorderCells

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine(inner))
	b.WriteString("\n")

	// Fixed-height trailer: favorites and saved views.
	trailer := m.renderNavTrailer(inner)
	trailerLines := strings.Count(trailer, "\n") + 1

	listHeight := height - paneBorderCells - 2 - trailerLines
	if listHeight < 1 {
		listHeight = 1
	}
	b.WriteString(m.renderScopeList(inner, listHeight))
	b.WriteString("\n")
	b.WriteString(trailer)

	return m.pane(b.String(), width, height, m.focus == FocusNav)
}

// renderTabs renders the three scope kind tabs, numbered to match their
// selection keys.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	kinds := []scope.Kind{scope.KindIndices, scope.KindAliases, scope.KindDataStreams}
	parts := make([]string, 0, len(kinds))
	for i, kind := range kinds {
		label := fmt.Sprintf("%d:%s", i+1, kind.Title())
		if kind == m.state.Catalog.Active() {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// renderFilterLine shows the live edit buffer while the filter is being
// edited, otherwise the committed filter.
func (m Model) renderFilterLine(width int) string {
	styles := m.theme.Styles()
	if m.inputMode == ModeEditingFilter {
		return styles.AccentText.Render("Filter: ") + m.filterEdit.input.View()
	}
	filter := m.state.Catalog.Filter()
	if filter == "" {
		return styles.MutedText.Render("Filter: (ctrl+f)")
	}
	return styles.MutedText.Render("Filter: ") + styles.Text.Render(truncate(filter, maxInt(width-8, 4)))
}

// renderScopeList renders the filtered entries with the selection
// highlighted. The window scrolls to keep the selection visible.
func (m Model) renderScopeList(width, height int) string {
	styles := m.theme.Styles()
	entries := m.state.Catalog.FilteredEntries()
	if len(entries) == 0 {
		return styles.MutedText.Render("No " + strings.ToLower(m.state.Catalog.Active().Title()))
	}

	selectedPos := m.state.Catalog.SelectedFilteredPos()
	start := 0
	if selectedPos >= height {
		start = selectedPos - height + 1
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := fit(m.entryLine(entries[i]), width)
		if i == selectedPos {
			lines = append(lines, styles.Selected.Render(line))
		} else {
			lines = append(lines, styles.Text.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// entryLine formats one catalog entry for the list, with the detail that
// matters for its kind.
func (m Model) entryLine(e scope.Entry) string {
	switch v := e.(type) {
	case scope.Index:
		return fmt.Sprintf("%s %s (%s)", healthDot(v.Health), v.Name, v.DocsCount)
	case scope.Alias:
		return fmt.Sprintf("%s -> %s", v.Name, v.Target)
	case scope.DataStream:
		return fmt.Sprintf("%s %s g%d (%d)", healthDot(v.Status), v.Name, v.Generation, v.BackingIndices)
	default:
		return e.Key()
	}
}

func healthDot(health string) string {
	if health == "" {
		return "·"
	}
	return "●"
}

// renderNavTrailer renders the favorites and saved views sections. Both
// are display-only for now.
func (m Model) renderNavTrailer(width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Favorites"))
	b.WriteString("\n")
	if len(m.state.Favorites) == 0 {
		b.WriteString(styles.MutedText.Render("No favorites"))
	} else {
		for i, name := range m.state.Favorites {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.Text.Render(truncate(name, width)))
		}
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Render("Saved Views"))
	b.WriteString("\n")
	if len(m.state.SavedViews) == 0 {
		b.WriteString(styles.MutedText.Render("No saved views"))
	} else {
		for i, sv := range m.state.SavedViews {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.Text.Render(truncate(sv.Name, width)))
		}
	}
	return b.String()
}
