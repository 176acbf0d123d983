package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode tracks whether keystrokes edit a buffer or drive navigation.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeEditingQuery
	ModeEditingFilter
)

// editField wraps a textinput and the value it was seeded from, so a
// cancelled edit can tell whether anything was discarded.
type editField struct {
	input textinput.Model
}

func newEditField() editField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	return editField{input: ti}
}

func (f *editField) begin(seed string) {
	f.input.SetValue(seed)
	f.input.CursorEnd()
	f.input.Focus()
}

func (f *editField) end() {
	f.input.Blur()
}

func (f *editField) value() string {
	return f.input.Value()
}

// beginQueryEdit seeds the query buffer from the committed query.
func (m *Model) beginQueryEdit() {
	m.inputMode = ModeEditingQuery
	m.queryEdit.begin(m.state.Browser.Query())
}

// beginFilterEdit seeds the filter buffer from the committed filter.
func (m *Model) beginFilterEdit() {
	m.inputMode = ModeEditingFilter
	m.filterEdit.begin(m.state.Catalog.Filter())
}

// commitQueryEdit writes the buffer as the committed query, resets paging
// and fetches the first page.
func (m *Model) commitQueryEdit() {
	m.state.Browser.CommitQuery(m.queryEdit.value())
	m.queryEdit.end()
	m.inputMode = ModeNormal
	m.orch.RefreshDocuments(m.ctx, m.state)
}

// cancelQueryEdit discards the buffer; the committed query is untouched.
func (m *Model) cancelQueryEdit() {
	m.queryEdit.end()
	m.inputMode = ModeNormal
}

// commitFilterEdit applies the buffer as the committed filter and
// reconciles the selection against the narrowed view.
func (m *Model) commitFilterEdit() {
	m.state.Catalog.SetFilter(m.filterEdit.value())
	m.filterEdit.end()
	m.inputMode = ModeNormal
	if m.state.Catalog.ReconcileSelection() {
		m.state.Browser.ResetPaging()
		m.orch.RefreshDocuments(m.ctx, m.state)
	}
}

// cancelFilterEdit clears the committed filter entirely, restoring the
// unfiltered view.
func (m *Model) cancelFilterEdit() {
	m.state.Catalog.SetFilter("")
	m.filterEdit.end()
	m.inputMode = ModeNormal
	if m.state.Catalog.ReconcileSelection() {
		m.state.Browser.ResetPaging()
		m.orch.RefreshDocuments(m.ctx, m.state)
	}
}

// handleEditKey routes a keypress while a buffer is focused.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.inputMode == ModeEditingQuery {
			m.commitQueryEdit()
		} else {
			m.commitFilterEdit()
		}
		return m, nil
	case "esc":
		if m.inputMode == ModeEditingQuery {
			m.cancelQueryEdit()
		} else {
			m.cancelFilterEdit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.inputMode == ModeEditingQuery {
		m.queryEdit.input, cmd = m.queryEdit.input.Update(msg)
	} else {
		m.filterEdit.input, cmd = m.filterEdit.input.Update(msg)
	}
	return m, cmd
}
