package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"spyglass/internal/prefs"
	"spyglass/internal/scope"
)

// handleKey dispatches a keypress according to the current input mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.inputMode != ModeNormal {
		return m.handleEditKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "h", "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "r":
		m.orch.RefreshAll(m.ctx, m.state)

	case "d":
		m.orch.RefreshDocuments(m.ctx, m.state)

	case "/", "?":
		m.beginQueryEdit()

	case "ctrl+f":
		m.beginFilterEdit()

	case "h":
		m.showHelp = true

	case "T":
		m.theme = NextTheme(m.theme.Name)
		p := prefs.Prefs{Theme: m.theme.Name}
		_ = prefs.Save(m.prefsPath, p)

	case "tab":
		if m.focus == FocusNav {
			m.focus = FocusResults
		} else {
			m.focus = FocusNav
		}

	case "1":
		m.switchKind(scope.KindIndices)
	case "2":
		m.switchKind(scope.KindAliases)
	case "3":
		m.switchKind(scope.KindDataStreams)

	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)

	case "enter", "o":
		if m.focus == FocusResults {
			m.showDrawer = !m.showDrawer
		}

	case "esc":
		m.showDrawer = false

	case "n":
		if m.state.Browser.NextPage() {
			m.orch.RefreshDocuments(m.ctx, m.state)
		}
	case "p":
		if m.state.Browser.PrevPage() {
			m.orch.RefreshDocuments(m.ctx, m.state)
		}

	case "v":
		if m.showDrawer {
			m.viewMode = m.viewMode.Next()
		}
	}
	return m, nil
}

// switchKind changes the active scope tab. A no-op switch to the already
// active kind does not refetch.
func (m *Model) switchKind(kind scope.Kind) {
	if !m.state.Catalog.SetActiveKind(kind) {
		return
	}
	m.state.Browser.ResetPaging()
	m.orch.RefreshDocuments(m.ctx, m.state)
}

// moveSelection advances either the scope list or the results list,
// depending on focus. Every scope selection move restarts the browser at
// the first page, even when the move wraps back onto the same entry;
// only an empty filtered view (no selection left) skips the refetch.
func (m *Model) moveSelection(delta int) {
	if m.focus == FocusResults {
		if delta > 0 {
			m.state.Browser.SelectNext()
		} else {
			m.state.Browser.SelectPrev()
		}
		return
	}

	if delta > 0 {
		m.state.Catalog.SelectNext()
	} else {
		m.state.Catalog.SelectPrev()
	}
	if _, ok := m.state.Catalog.SelectedName(); ok {
		m.state.Browser.ResetPaging()
		m.orch.RefreshDocuments(m.ctx, m.state)
	}
}
