package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top status bar: cluster identity, connection
// health, the active scope, and the last refresh outcome.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := styles.MutedText.Render("  ")

	var parts []string
	parts = append(parts, styles.AccentText.Render("spyglass"))

	if m.state.HasHealth {
		h := m.state.Health
		parts = append(parts, styles.Text.Render(h.ClusterName))
		parts = append(parts, styles.HealthStyle(h.Status).Render("● "+strings.ToLower(h.Status)))
	} else {
		parts = append(parts, styles.ErrorText.Render("● disconnected"))
	}

	if m.client != nil && m.client.HasUserinfo() {
		parts = append(parts, styles.MutedText.Render("auth: basic"))
	} else {
		parts = append(parts, styles.MutedText.Render("auth: none"))
	}

	parts = append(parts, styles.MutedText.Render(m.scopeLabel()))
	parts = append(parts, styles.MutedText.Render("mode: QueryString"))

	if !m.state.LastRefreshed.IsZero() {
		parts = append(parts, styles.MutedText.Render(m.state.LastRefreshed.Format("15:04:05")))
	}

	line := strings.Join(parts, sep)

	if m.state.LastError != "" {
		line += sep + styles.ErrorText.Render(truncate(m.state.LastError, maxInt(m.width/2, 20)))
	}

	return styles.Header.Width(m.width).Render(line)
}

// scopeLabel names the scope the browser is bound to, "kind/name".
func (m Model) scopeLabel() string {
	name, ok := m.state.Catalog.SelectedName()
	if !ok {
		return m.state.Catalog.Active().Label() + "/-"
	}
	return m.state.Catalog.Active().Label() + "/" + name
}

// summaryLine formats the hit statistics of the last document fetch.
// Degraded results (shard failures or timeouts) get flagged inline.
func (m Model) summaryLine() string {
	s := m.state.Browser.Summary()
	var parts []string
	if s.Total != nil {
		parts = append(parts, fmt.Sprintf("hits %d", *s.Total))
	}
	if s.TookMS != nil {
		parts = append(parts, fmt.Sprintf("took %dms", *s.TookMS))
	}
	if s.ShardsFailed != nil && *s.ShardsFailed > 0 {
		parts = append(parts, fmt.Sprintf("shard_fail %d", *s.ShardsFailed))
	}
	if s.TimedOut != nil && *s.TimedOut {
		parts = append(parts, "timeout")
	}
	return strings.Join(parts, " | ")
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
