// Package ui renders the dashboard and routes keyboard input to the state
// components. It is a Bubble Tea model: a single loop owns all state, and
// every cluster fetch runs synchronously inside that loop, so a document
// fetch always observes the query, cursor, and selection that triggered it.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"spyglass/internal/cluster"
	"spyglass/internal/docview"
	"spyglass/internal/prefs"
	"spyglass/internal/state"
)

// Refresher abstracts the refresh orchestration the UI triggers.
// Satisfied by *app.Orchestrator.
type Refresher interface {
	RefreshAll(ctx context.Context, st *state.State)
	RefreshDocuments(ctx context.Context, st *state.State)
}

// Focus identifies which pane receives navigation keys.
type Focus int

const (
	FocusNav Focus = iota
	FocusResults
)

// Options configure the UI.
type Options struct {
	Context      context.Context
	Client       *cluster.Client
	State        *state.State
	Orchestrator Refresher
	RefreshEvery time.Duration
	ThemeName    string
	PrefsPath    string
}

const (
	tickEvery      = 200 * time.Millisecond
	defaultRefresh = 10 * time.Second
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	client       *cluster.Client
	state        *state.State
	orch         Refresher
	refreshEvery time.Duration
	prefsPath    string

	theme  Theme
	width  int
	height int
	ready  bool

	focus      Focus
	inputMode  InputMode
	queryEdit  editField
	filterEdit editField

	showDrawer bool
	viewMode   docview.Mode
	showHelp   bool
}

// New creates the model. The caller is expected to have run one initial
// refresh so the first frame is not empty.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	refreshEvery := opts.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = defaultRefresh
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:          ctx,
		client:       opts.Client,
		state:        opts.State,
		orch:         opts.Orchestrator,
		refreshEvery: refreshEvery,
		prefsPath:    prefsPath,
		theme:        GetTheme(themeName),
		queryEdit:    newEditField(),
		filterEdit:   newEditField(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick runs the periodic refresh when the interval has elapsed, then
// schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if time.Since(m.state.LastRefreshed) >= m.refreshEvery {
		m.orch.RefreshAll(m.ctx, m.state)
	}
	return m, tickCmd()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	base := m.theme.Styles().Base
	if m.showHelp {
		return base.Render(m.renderHelp())
	}
	return base.Render(m.renderMain())
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run performs the initial refresh and starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Orchestrator != nil && opts.State != nil {
		opts.Orchestrator.RefreshAll(opts.Context, opts.State)
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
