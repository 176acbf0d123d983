package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spyglass/internal/cluster"
	"spyglass/internal/scope"
	"spyglass/internal/state"
)

// Orchestrator runs the independent data fetches of one refresh pass and
// reconciles each result into the state. Fetches fail independently: one
// dead endpoint must not hide the others' data.
type Orchestrator struct {
	client cluster.API
}

// NewOrchestrator returns an orchestrator over the given client.
func NewOrchestrator(client cluster.API) *Orchestrator {
	return &Orchestrator{client: client}
}

// errorJoin separates failure lines in the aggregated summary.
const errorJoin = " | "

// RefreshAll runs the five fetches in sequence: health, the three scope
// collections, then the current document page. Every failure is collected
// as a "name: err" line; the joined lines replace the previous error
// summary, or clear it when the pass had none. LastRefreshed is always
// stamped.
func (o *Orchestrator) RefreshAll(ctx context.Context, st *state.State) {
	var failures []string

	if err := o.refreshHealth(ctx, st); err != nil {
		failures = append(failures, fmt.Sprintf("health: %v", err))
	}
	if err := o.refreshScope(ctx, st, scope.KindIndices); err != nil {
		failures = append(failures, fmt.Sprintf("indices: %v", err))
	}
	if err := o.refreshScope(ctx, st, scope.KindAliases); err != nil {
		failures = append(failures, fmt.Sprintf("aliases: %v", err))
	}
	if err := o.refreshScope(ctx, st, scope.KindDataStreams); err != nil {
		failures = append(failures, fmt.Sprintf("datastreams: %v", err))
	}
	if err := o.refreshDocuments(ctx, st); err != nil {
		failures = append(failures, fmt.Sprintf("docs: %v", err))
	}

	st.LastRefreshed = time.Now()
	st.LastError = strings.Join(failures, errorJoin)
}

// RefreshDocuments re-fetches only the document page, after a selection,
// query, or pagination change. A failure replaces the error summary but
// leaves the previous page on screen.
func (o *Orchestrator) RefreshDocuments(ctx context.Context, st *state.State) {
	if err := o.refreshDocuments(ctx, st); err != nil {
		st.LastError = fmt.Sprintf("docs: %v", err)
	}
}

func (o *Orchestrator) refreshHealth(ctx context.Context, st *state.State) error {
	health, err := o.client.FetchHealth(ctx)
	if err != nil {
		return err
	}
	st.Health = health
	st.HasHealth = true
	return nil
}

func (o *Orchestrator) refreshScope(ctx context.Context, st *state.State, kind scope.Kind) error {
	entries, err := o.client.FetchScope(ctx, kind)
	if err != nil {
		return err
	}
	st.Catalog.Replace(kind, entries)
	return nil
}

// refreshDocuments fetches the current page for the selected scope entry.
// With nothing selected it clears the browser instead: an empty page with
// no total is a valid, displayable state, not a failure.
func (o *Orchestrator) refreshDocuments(ctx context.Context, st *state.State) error {
	name, ok := st.Catalog.SelectedName()
	if !ok {
		st.Browser.Clear()
		return nil
	}
	docs, summary, err := o.client.Search(ctx, name, st.Browser.From(), st.Browser.Size(), st.Browser.Query())
	if err != nil {
		return err
	}
	st.Browser.ApplyResult(docs, summary)
	return nil
}
