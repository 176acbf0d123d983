package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SPYGLASS_URL", "")
	t.Setenv("ES_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ClusterURL != "" {
		t.Fatalf("ClusterURL = %q, want empty (client applies default)", cfg.ClusterURL)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.RefreshEvery != defaultRefresh || cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("intervals = %v/%v, want defaults", cfg.RefreshEvery, cfg.RequestTimeout)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	t.Setenv("SPYGLASS_URL", "")
	t.Setenv("ES_URL", "")

	path := writeConfig(t, `
cluster_url = "http://search.internal:9200"
page_size = 20
refresh_seconds = 30
timeout_seconds = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ClusterURL != "http://search.internal:9200" {
		t.Fatalf("ClusterURL = %q", cfg.ClusterURL)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.RefreshEvery != 30*time.Second {
		t.Fatalf("RefreshEvery = %v, want 30s", cfg.RefreshEvery)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("SPYGLASS_URL", "")
	t.Setenv("ES_URL", "http://env-cluster:9200")

	path := writeConfig(t, `cluster_url = "http://file-cluster:9200"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ClusterURL != "http://env-cluster:9200" {
		t.Fatalf("ClusterURL = %q, want env override", cfg.ClusterURL)
	}

	// SPYGLASS_URL takes precedence over ES_URL.
	t.Setenv("SPYGLASS_URL", "http://primary:9200")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ClusterURL != "http://primary:9200" {
		t.Fatalf("ClusterURL = %q, want SPYGLASS_URL", cfg.ClusterURL)
	}
}

func TestLoad_RejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `cluster_url = [`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
