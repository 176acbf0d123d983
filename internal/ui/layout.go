package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	navMinWidth     = 24
	navMaxWidth     = 40
	drawerMinWidth  = 30
	chromeHeight    = 2 // header + footer
	paneBorderCells = 2
)

// renderMain composes the full frame: header, the nav and results panes
// side by side (plus the document drawer when open), and the footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - chromeHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	navWidth := clampInt(m.width/4, navMinWidth, navMaxWidth)
	if navWidth > m.width-10 {
		navWidth = maxInt(m.width-10, 10)
	}

	var columns []string
	if m.showDrawer {
		drawerWidth := clampInt(m.width*55/100, drawerMinWidth, m.width-navWidth-10)
		resultsWidth := m.width - navWidth - drawerWidth
		columns = []string{
			m.renderNav(navWidth, bodyHeight),
			m.renderResults(resultsWidth, bodyHeight),
			m.renderDrawer(drawerWidth, bodyHeight),
		}
	} else {
		columns = []string{
			m.renderNav(navWidth, bodyHeight),
			m.renderResults(m.width-navWidth, bodyHeight),
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// pane wraps content in a bordered box sized to the given outer
// dimensions, using the focus border when focused.
func (m Model) pane(content string, width, height int, focused bool) string {
	styles := m.theme.Styles()
	border := styles.Border
	if focused {
		border = styles.BorderFocus
	}
	return border.
		Width(width - paneBorderCells).
		Height(height - paneBorderCells).
		Render(content)
}
