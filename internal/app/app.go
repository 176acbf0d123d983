// Package app wires configuration, the cluster client, the dashboard state,
// and the UI into the running application.
package app

import (
	"context"
	"fmt"

	"spyglass/internal/cluster"
	"spyglass/internal/config"
	"spyglass/internal/prefs"
	"spyglass/internal/state"
	"spyglass/internal/ui"
)

// Options configure the spyglass application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/spyglass/prefs.toml
	ClusterURL string // overrides config and environment when set
}

// Run boots the dashboard until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ClusterURL != "" {
		cfg.ClusterURL = opts.ClusterURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := cluster.NewClient(cfg.ClusterURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init cluster client: %w", err)
	}

	st := state.New(cfg.PageSize)

	uiOpts := ui.Options{
		Context:      ctx,
		Client:       client,
		State:        st,
		Orchestrator: NewOrchestrator(client),
		RefreshEvery: cfg.RefreshEvery,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
