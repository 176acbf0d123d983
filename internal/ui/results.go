package ui

import (
	"strings"

	"spyglass/internal/browse"
	"spyglass/internal/docview"
)

const (
	resultIDMin = 12
	resultIDMax = 28
)

// renderResults renders the center pane: the query line, the result
// summary, and the document table.
func (m Model) renderResults(width, height int) string {
	styles := m.theme.Styles()
	inner := width - paneBorderCells

	var b strings.Builder
	b.WriteString(m.renderQueryLine(inner))
	b.WriteString("\n")

	summary := m.summaryLine()
	if summary == "" {
		b.WriteString(styles.MutedText.Render("no results yet"))
	} else if m.state.Browser.Summary().Degraded() {
		b.WriteString(styles.ErrorText.Render(summary))
	} else {
		b.WriteString(styles.MutedText.Render(summary))
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Render(m.state.Browser.Title()))
	b.WriteString("\n")

	tableHeight := height - paneBorderCells - 3
	if tableHeight < 1 {
		tableHeight = 1
	}
	b.WriteString(m.renderResultRows(inner, tableHeight))

	return m.pane(b.String(), width, height, m.focus == FocusResults)
}

// renderQueryLine shows the live edit buffer while the query is being
// edited (flagged with "*"), otherwise the committed query.
func (m Model) renderQueryLine(width int) string {
	styles := m.theme.Styles()
	if m.inputMode == ModeEditingQuery {
		return styles.AccentText.Render("Query*: ") + m.queryEdit.input.View()
	}
	query := m.state.Browser.Query()
	if query == "" {
		return styles.MutedText.Render("Query: match_all (/)")
	}
	return styles.MutedText.Render("Query: ") + styles.Text.Render(truncate(query, maxInt(width-7, 4)))
}

// renderResultRows renders the id/preview table for the current page.
func (m Model) renderResultRows(width, height int) string {
	styles := m.theme.Styles()
	docs := m.state.Browser.Documents()
	if len(docs) == 0 {
		return styles.MutedText.Render("No documents")
	}

	idWidth := clampInt(width/3, resultIDMin, resultIDMax)
	previewWidth := width - idWidth - 2
	if previewWidth < 4 {
		previewWidth = 4
	}

	selected := m.state.Browser.SelectedIndex()
	lines := make([]string, 0, len(docs))
	for i, doc := range docs {
		if i >= height {
			break
		}
		row := fit(doc.ID, idWidth) + "  " + fit(documentPreview(doc), previewWidth)
		if i == selected {
			lines = append(lines, styles.Selected.Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

// documentPreview flattens the source into a single line of key = value
// pairs for the table's preview column.
func documentPreview(doc browse.Document) string {
	return strings.Join(docview.Flatten(doc.Source), ", ")
}
