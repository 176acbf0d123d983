// Package state defines the dashboard's application state: the scope
// catalog, the document browser, cluster health, and the aggregated
// refresh outcome.
package state

import (
	"time"

	"spyglass/internal/browse"
	"spyglass/internal/cluster"
	"spyglass/internal/scope"
)

// SavedView is a named scope+query shortcut. Nothing populates these yet;
// the panel renders a placeholder until creation and replay land.
type SavedView struct {
	Name  string
	Scope string
	Query string
}

// State is the whole dashboard state. It is owned by the UI loop and
// mutated only through the component methods and the refresh layer;
// nothing else holds a reference to it.
type State struct {
	Catalog *scope.Catalog
	Browser *browse.Browser

	Health    cluster.Health
	HasHealth bool

	Favorites  []string
	SavedViews []SavedView

	// LastError aggregates the failures of the most recent refresh pass,
	// empty when the pass was clean. LastRefreshed is stamped on every
	// full pass, failed fetches included.
	LastError     string
	LastRefreshed time.Time
}

// New returns an empty dashboard state with the given page size.
func New(pageSize int64) *State {
	return &State{
		Catalog: scope.NewCatalog(),
		Browser: browse.NewBrowser(pageSize),
	}
}
